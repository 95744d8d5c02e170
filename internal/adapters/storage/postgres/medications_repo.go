package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"smartpill/internal/domain/medications"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medications (
			user_id,
			name, dose,
			start_date, daily_frequency, day_interval,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		m.UserID,
		m.Name,
		m.Dose,
		m.StartDate.String(),
		m.DailyFrequency,
		m.DayInterval,
		m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}
	return m, nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, userID, id int64) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, user_id,
			name, dose,
			start_date, daily_frequency, day_interval,
			created_at
		FROM medications
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	m, err := scanMedication(row)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}
	return m, nil
}

func (r *MedicationsRepo) ListByUser(ctx context.Context, userID int64) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id,
			name, dose,
			start_date, daily_frequency, day_interval,
			created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE medications
		SET
			name = $3,
			dose = $4,
			start_date = $5,
			daily_frequency = $6,
			day_interval = $7
		WHERE id = $1 AND user_id = $2
		RETURNING
			id, user_id,
			name, dose,
			start_date, daily_frequency, day_interval,
			created_at
	`,
		m.ID,
		m.UserID,
		m.Name,
		m.Dose,
		m.StartDate.String(),
		m.DailyFrequency,
		m.DayInterval,
	)

	updated, err := scanMedication(row)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}
	return updated, nil
}

// Delete: las tomas caen por ON DELETE CASCADE.
func (r *MedicationsRepo) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(s rowScanner) (medications.Medication, error) {
	var (
		m     medications.Medication
		start string
	)
	if err := s.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Dose,
		&start,
		&m.DailyFrequency,
		&m.DayInterval,
		&m.CreatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	d, err := calendar.Parse(start)
	if err != nil {
		return medications.Medication{}, fmt.Errorf("medication %d start_date %q: %w", m.ID, start, err)
	}
	m.StartDate = d
	return m, nil
}
