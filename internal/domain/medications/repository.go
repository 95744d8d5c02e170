package medications

import "context"

// Repository siempre filtra por userID: un usuario nunca ve medicamentos ajenos.
// "No existe" y "es de otro usuario" son el mismo apperrors.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, m Medication) (Medication, error)
	GetByID(ctx context.Context, userID, id int64) (Medication, error)
	// ListByUser ordena por created_at DESC (desempate id DESC).
	ListByUser(ctx context.Context, userID int64) ([]Medication, error)
	Update(ctx context.Context, m Medication) (Medication, error)
	// Delete borra también las tomas registradas del medicamento.
	Delete(ctx context.Context, userID, id int64) error
}
