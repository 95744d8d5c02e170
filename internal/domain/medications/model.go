package medications

import (
	"time"

	"smartpill/internal/platform/calendar"
)

// Medication es un medicamento del usuario con su esquema de dosis.
//
// Invariantes (las garantiza Service al escribir):
// DailyFrequency >= 1, DayInterval >= 1, StartDate es fecha real.
type Medication struct {
	ID     int64
	UserID int64

	Name string
	Dose string // texto libre: "10mg", "2 comprimidos"

	StartDate      calendar.Date // primer día posible de toma
	DailyFrequency int           // tomas por día de toma
	DayInterval    int           // cada cuántos días se repite, contando desde StartDate

	CreatedAt time.Time
}
