package sqlite

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

const medicationColumns = `id, user_id, name, dose, start_date, daily_frequency, day_interval, created_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (user_id, name, dose, start_date, daily_frequency, day_interval, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		m.UserID,
		m.Name,
		m.Dose,
		m.StartDate.String(),
		m.DailyFrequency,
		m.DayInterval,
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return medications.Medication{}, err
	}
	m.ID = id
	return m, nil
}

func (r *MedicationsRepo) GetByID(ctx context.Context, userID, id int64) (medications.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE id = ? AND user_id = ?
	`, id, userID)

	m, err := scanMedication(row)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}
	return m, nil
}

func (r *MedicationsRepo) ListByUser(ctx context.Context, userID int64) ([]medications.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE user_id = ?
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
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET
			name = ?,
			dose = ?,
			start_date = ?,
			daily_frequency = ?,
			day_interval = ?
		WHERE id = ? AND user_id = ?
	`,
		m.Name,
		m.Dose,
		m.StartDate.String(),
		m.DailyFrequency,
		m.DayInterval,
		m.ID,
		m.UserID,
	)
	if err != nil {
		return medications.Medication{}, mapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return medications.Medication{}, apperrors.ErrNotFound
	}
	return r.GetByID(ctx, m.UserID, m.ID)
}

// Delete: las tomas caen por ON DELETE CASCADE.
func (r *MedicationsRepo) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return mapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(s rowScanner) (medications.Medication, error) {
	var (
		m       medications.Medication
		start   string
		created string
	)
	if err := s.Scan(
		&m.ID,
		&m.UserID,
		&m.Name,
		&m.Dose,
		&start,
		&m.DailyFrequency,
		&m.DayInterval,
		&created,
	); err != nil {
		return medications.Medication{}, err
	}

	d, err := calendar.Parse(start)
	if err != nil {
		return medications.Medication{}, fmt.Errorf("medication %d start_date %q: %w", m.ID, start, err)
	}
	m.StartDate = d

	t, err := parseTime(created)
	if err != nil {
		return medications.Medication{}, fmt.Errorf("medication %d created_at: %w", m.ID, err)
	}
	m.CreatedAt = t
	return m, nil
}
