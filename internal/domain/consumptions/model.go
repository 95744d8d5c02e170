package consumptions

import (
	"time"

	"smartpill/internal/platform/calendar"
)

// Consumption es una toma registrada por el usuario. No se edita ni se borra
// (salvo en cascada al borrar el medicamento).
type Consumption struct {
	ID           int64
	MedicationID int64

	Date calendar.Date
	Time string // HH:MM o HH:MM:SS, tal como llegó (trim)

	CreatedAt time.Time
}

// Entry es la vista con el nombre del medicamento que usa el reporte.
type Entry struct {
	ID             int64
	MedicationID   int64
	MedicationName string
	Date           calendar.Date
	Time           string
}
