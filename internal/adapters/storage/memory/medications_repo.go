package memory

import (
	"context"
	"sort"

	"smartpill/internal/domain/medications"
	"smartpill/internal/platform/apperrors"
)

type medicationRepo struct {
	db *DB
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.lastMedicationID++
	m.ID = r.db.lastMedicationID
	r.db.medications[m.ID] = m
	return m, nil
}

func (r *medicationRepo) GetByID(ctx context.Context, userID, id int64) (medications.Medication, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	m, ok := r.db.medications[id]
	if !ok || m.UserID != userID {
		return medications.Medication{}, apperrors.ErrNotFound
	}
	return m, nil
}

func (r *medicationRepo) ListByUser(ctx context.Context, userID int64) ([]medications.Medication, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]medications.Medication, 0)
	for _, m := range r.db.medications {
		if m.UserID == userID {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cur, ok := r.db.medications[m.ID]
	if !ok || cur.UserID != m.UserID {
		return medications.Medication{}, apperrors.ErrNotFound
	}
	// user_id y created_at no cambian
	m.CreatedAt = cur.CreatedAt
	r.db.medications[m.ID] = m
	return m, nil
}

func (r *medicationRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m, ok := r.db.medications[id]
	if !ok || m.UserID != userID {
		return apperrors.ErrNotFound
	}

	delete(r.db.medications, id)
	for cid, c := range r.db.consumptions {
		if c.MedicationID == id {
			delete(r.db.consumptions, cid)
		}
	}
	return nil
}
