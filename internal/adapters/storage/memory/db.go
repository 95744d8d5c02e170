package memory

import (
	"sync"

	"smartpill/internal/domain/consumptions"
	"smartpill/internal/domain/medications"
	"smartpill/internal/domain/users"
)

// DB guarda todo bajo un mismo lock: el borrado en cascada y el join
// medicamento/toma necesitan ver las tres tablas a la vez.
type DB struct {
	mu sync.RWMutex

	users        map[int64]users.User
	medications  map[int64]medications.Medication
	consumptions map[int64]consumptions.Consumption

	lastUserID        int64
	lastMedicationID  int64
	lastConsumptionID int64
}

func NewDB() *DB {
	return &DB{
		users:        make(map[int64]users.User),
		medications:  make(map[int64]medications.Medication),
		consumptions: make(map[int64]consumptions.Consumption),
	}
}

func (db *DB) Users() users.Repository {
	return &userRepo{db: db}
}

func (db *DB) Medications() medications.Repository {
	return &medicationRepo{db: db}
}

func (db *DB) Consumptions() consumptions.Repository {
	return &consumptionRepo{db: db}
}
