package users

import "context"

type Repository interface {
	// Create asigna ID y devuelve el usuario persistido.
	// Email duplicado => apperrors.ErrConflict.
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
