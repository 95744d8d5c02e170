package postgres

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
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medication_consumptions (medication_id, date, time, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.MedicationID, c.Date.String(), c.Time, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return consumptions.Consumption{}, mapErr(err)
	}
	return c, nil
}

func (r *ConsumptionsRepo) ListByMedication(ctx context.Context, medicationID int64, from, to *calendar.Date) ([]consumptions.Consumption, error) {
	// NULL = sin límite
	var fromArg, toArg sql.NullString
	if from != nil {
		fromArg = sql.NullString{String: from.String(), Valid: true}
	}
	if to != nil {
		toArg = sql.NullString{String: to.String(), Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, medication_id, date, time, created_at
		FROM medication_consumptions
		WHERE medication_id = $1
			AND ($2::text IS NULL OR date >= $2)
			AND ($3::text IS NULL OR date <= $3)
		ORDER BY date, time, id
	`, medicationID, fromArg, toArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]consumptions.Consumption, 0)
	for rows.Next() {
		var (
			c    consumptions.Consumption
			date string
		)
		if err := rows.Scan(&c.ID, &c.MedicationID, &date, &c.Time, &c.CreatedAt); err != nil {
			return nil, err
		}
		if c.Date, err = calendar.Parse(date); err != nil {
			return nil, fmt.Errorf("consumption %d date %q: %w", c.ID, date, err)
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

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.medication_id, m.name, c.date, c.time
		FROM medication_consumptions c
		JOIN medications m ON c.medication_id = m.id
		WHERE m.user_id = $1
			AND c.medication_id = ANY($2)
			AND c.date >= $3 AND c.date <= $4
		ORDER BY c.date, c.time, c.id
	`, userID, medicationIDs, from.String(), to.String())
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
