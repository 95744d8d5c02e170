package memory

import (
	"context"
	"sort"

	"smartpill/internal/domain/consumptions"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

type consumptionRepo struct {
	db *DB
}

func (r *consumptionRepo) Create(ctx context.Context, c consumptions.Consumption) (consumptions.Consumption, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// mismo comportamiento que la FK en SQL
	if _, ok := r.db.medications[c.MedicationID]; !ok {
		return consumptions.Consumption{}, apperrors.ErrNotFound
	}

	r.db.lastConsumptionID++
	c.ID = r.db.lastConsumptionID
	r.db.consumptions[c.ID] = c
	return c, nil
}

func (r *consumptionRepo) ListByMedication(ctx context.Context, medicationID int64, from, to *calendar.Date) ([]consumptions.Consumption, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]consumptions.Consumption, 0)
	for _, c := range r.db.consumptions {
		if c.MedicationID != medicationID {
			continue
		}
		if from != nil && c.Date.Before(*from) {
			continue
		}
		if to != nil && c.Date.After(*to) {
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return lessByDateTime(out[i].Date, out[i].Time, out[i].ID, out[j].Date, out[j].Time, out[j].ID)
	})
	return out, nil
}

func (r *consumptionRepo) ListForMedications(ctx context.Context, userID int64, medicationIDs []int64, from, to calendar.Date) ([]consumptions.Entry, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	wanted := make(map[int64]bool, len(medicationIDs))
	for _, id := range medicationIDs {
		wanted[id] = true
	}

	out := make([]consumptions.Entry, 0)
	for _, c := range r.db.consumptions {
		m, ok := r.db.medications[c.MedicationID]
		if !ok || m.UserID != userID || !wanted[m.ID] {
			continue
		}
		if c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		out = append(out, consumptions.Entry{
			ID:             c.ID,
			MedicationID:   c.MedicationID,
			MedicationName: m.Name,
			Date:           c.Date,
			Time:           c.Time,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return lessByDateTime(out[i].Date, out[i].Time, out[i].ID, out[j].Date, out[j].Time, out[j].ID)
	})
	return out, nil
}

// lessByDateTime replica ORDER BY date, time, id sobre columnas TEXT.
func lessByDateTime(ad calendar.Date, at string, aid int64, bd calendar.Date, bt string, bid int64) bool {
	if !ad.Equal(bd) {
		return ad.Before(bd)
	}
	if at != bt {
		return at < bt
	}
	return aid < bid
}
