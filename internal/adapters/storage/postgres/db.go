package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smartpill/internal/platform/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Códigos SQLSTATE que nos importan.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// date y time van como TEXT (YYYY-MM-DD / HH:MM[:SS]) igual que en SQLite:
// se comparan lexicográficamente y se devuelven tal cual se guardaron.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS medications (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	dose TEXT NOT NULL,
	start_date TEXT NOT NULL,
	daily_frequency INTEGER NOT NULL CHECK (daily_frequency >= 1),
	day_interval INTEGER NOT NULL CHECK (day_interval >= 1),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_medications_user_id ON medications (user_id);

CREATE TABLE IF NOT EXISTS medication_consumptions (
	id BIGSERIAL PRIMARY KEY,
	medication_id BIGINT NOT NULL REFERENCES medications (id) ON DELETE CASCADE,
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_medication_consumptions_medication_date ON medication_consumptions (medication_id, date);
`

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate aplica el schema; es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply postgres schema: %w", err)
	}
	return nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}
