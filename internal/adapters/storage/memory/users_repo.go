package memory

import (
	"context"

	"smartpill/internal/domain/users"
	"smartpill/internal/platform/apperrors"
)

type userRepo struct {
	db *DB
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return users.User{}, apperrors.ErrConflict
		}
	}

	r.db.lastUserID++
	u.ID = r.db.lastUserID
	r.db.users[u.ID] = u
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, apperrors.ErrNotFound
}
