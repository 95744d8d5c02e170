package postgres

import (
	"context"
	"database/sql"

	"smartpill/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, u.Email, u.PasswordHash, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		return users.User{}, mapErr(err)
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return users.User{}, mapErr(err)
	}
	return u, nil
}
