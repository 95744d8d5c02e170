// Package storage elige el backend de persistencia según DB_DRIVER.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	mem "smartpill/internal/adapters/storage/memory"
	pg "smartpill/internal/adapters/storage/postgres"
	lite "smartpill/internal/adapters/storage/sqlite"
	"smartpill/internal/domain/consumptions"
	"smartpill/internal/domain/medications"
	"smartpill/internal/domain/users"
	"smartpill/internal/platform/config"
)

// Store agrupa los repos de un mismo backend.
type Store struct {
	Driver string

	Users        users.Repository
	Medications  medications.Repository
	Consumptions consumptions.Repository

	db *sql.DB // nil en memory
}

// Memory es el store por defecto de los tests y del modo dev.
func Memory() *Store {
	db := mem.NewDB()
	return &Store{
		Driver:       config.DriverMemory,
		Users:        db.Users(),
		Medications:  db.Medications(),
		Consumptions: db.Consumptions(),
	}
}

// Open abre el backend configurado. SQLite aplica el schema al abrir
// (igual que siempre); Postgres necesita `smartpill migrate` o Migrate.
func Open(cfg config.Config) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		return Memory(), nil

	case config.DriverSQLite:
		db, err := lite.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Driver:       config.DriverSQLite,
			Users:        lite.NewUsersRepo(db),
			Medications:  lite.NewMedicationsRepo(db),
			Consumptions: lite.NewConsumptionsRepo(db),
			db:           db,
		}, nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Store{
			Driver:       config.DriverPostgres,
			Users:        pg.NewUsersRepo(db),
			Medications:  pg.NewMedicationsRepo(db),
			Consumptions: pg.NewConsumptionsRepo(db),
			db:           db,
		}, nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
}

// Migrate aplica el schema del backend; en memory no hace nada.
func (s *Store) Migrate(ctx context.Context) error {
	switch s.Driver {
	case config.DriverSQLite:
		return lite.Migrate(ctx, s.db)
	case config.DriverPostgres:
		return pg.Migrate(ctx, s.db)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
