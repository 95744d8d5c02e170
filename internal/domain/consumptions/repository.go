package consumptions

import (
	"context"

	"smartpill/internal/platform/calendar"
)

type Repository interface {
	Create(ctx context.Context, c Consumption) (Consumption, error)

	// ListByMedication no chequea dueño: eso lo hace Service antes.
	// from/to nil = sin límite. Orden (date, time, id).
	ListByMedication(ctx context.Context, medicationID int64, from, to *calendar.Date) ([]Consumption, error)

	// ListForMedications devuelve solo tomas de medicamentos de userID cuyo id
	// esté en medicationIDs y con from <= date <= to. Orden (date, time, id).
	ListForMedications(ctx context.Context, userID int64, medicationIDs []int64, from, to calendar.Date) ([]Entry, error)
}
