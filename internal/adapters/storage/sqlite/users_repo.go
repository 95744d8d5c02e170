package sqlite

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
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (email, password_hash, created_at)
		VALUES (?, ?, ?)
	`, u.Email, u.PasswordHash, formatTime(u.CreatedAt))
	if err != nil {
		return users.User{}, mapErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return users.User{}, err
	}
	u.ID = id
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = ?
	`, email)

	var (
		u       users.User
		created string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &created); err != nil {
		return users.User{}, mapErr(err)
	}

	t, err := parseTime(created)
	if err != nil {
		return users.User{}, err
	}
	u.CreatedAt = t
	return u, nil
}
