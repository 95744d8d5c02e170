package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"smartpill/internal/domain/consumptions"
	"smartpill/internal/platform/calendar"
)

type ConsumptionsRepo struct {
	db *sql.DB
}

func NewConsumptionsRepo(db *sql.DB) *ConsumptionsRepo {
	return &ConsumptionsRepo{db: db}
}

func (r *ConsumptionsRepo) Create(ctx context.Context, c consumptions.Consumption) (consumptions.Consumption, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_consumptions (medication_id, date, time, created_at)
		VALUES (?, ?, ?, ?)
	`, c.MedicationID, c.Date.String(), c.Time, formatTime(c.CreatedAt))
	if err != nil {
		return consumptions.Consumption{}, mapErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return consumptions.Consumption{}, err
	}
	c.ID = id
	return c, nil
}

func (r *ConsumptionsRepo) ListByMedication(ctx context.Context, medicationID int64, from, to *calendar.Date) ([]consumptions.Consumption, error) {
	query := `
		SELECT id, medication_id, date, time, created_at
		FROM medication_consumptions
		WHERE medication_id = ?`
	args := []any{medicationID}

	if from != nil {
		query += ` AND date >= ?`
		args = append(args, from.String())
	}
	if to != nil {
		query += ` AND date <= ?`
		args = append(args, to.String())
	}
	query += ` ORDER BY date, time, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consumptions.Consumption, 0)
	for rows.Next() {
		var (
			c             consumptions.Consumption
			date, created string
		)
		if err := rows.Scan(&c.ID, &c.MedicationID, &date, &c.Time, &created); err != nil {
			return nil, err
		}
		if c.Date, err = calendar.Parse(date); err != nil {
			return nil, fmt.Errorf("consumption %d date %q: %w", c.ID, date, err)
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("consumption %d created_at: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListForMedications: el JOIN con medications filtra por dueño aunque
// medicationIDs traiga ids ajenos.
func (r *ConsumptionsRepo) ListForMedications(ctx context.Context, userID int64, medicationIDs []int64, from, to calendar.Date) ([]consumptions.Entry, error) {
	if len(medicationIDs) == 0 {
		return []consumptions.Entry{}, nil
	}

	args := make([]any, 0, len(medicationIDs)+3)
	args = append(args, userID)
	for _, id := range medicationIDs {
		args = append(args, id)
	}
	args = append(args, from.String(), to.String())

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.medication_id, m.name, c.date, c.time
		FROM medication_consumptions c
		JOIN medications m ON c.medication_id = m.id
		WHERE m.user_id = ?
			AND c.medication_id IN (`+placeholders(len(medicationIDs))+`)
			AND c.date >= ? AND c.date <= ?
		ORDER BY c.date, c.time, c.id
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consumptions.Entry, 0)
	for rows.Next() {
		var (
			e    consumptions.Entry
			date string
		)
		if err := rows.Scan(&e.ID, &e.MedicationID, &e.MedicationName, &date, &e.Time); err != nil {
			return nil, err
		}
		if e.Date, err = calendar.Parse(date); err != nil {
			return nil, fmt.Errorf("consumption %d date %q: %w", e.ID, date, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
