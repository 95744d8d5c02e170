package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"smartpill/internal/domain/consumptions"
	"smartpill/internal/domain/medications"
	"smartpill/internal/domain/users"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"no rows", sql.ErrNoRows, apperrors.ErrNotFound},
		{"unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}), apperrors.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: foreignKeyViolation}, apperrors.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapErr(tc.in); !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}

	other := errors.New("boom")
	if got := mapErr(other); got != other {
		t.Fatalf("unknown errors must pass through, got %v", got)
	}
	if mapErr(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

// TestRepos_Integration corre solo con TEST_DB_DSN apuntando a un Postgres descartable.
func TestRepos_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
	u, err := NewUsersRepo(db).Create(ctx, users.User{Email: email, PasswordHash: "hash", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := NewUsersRepo(db).Create(ctx, users.User{Email: email, PasswordHash: "hash", CreatedAt: time.Now()}); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("duplicate: expected ErrConflict, got %v", err)
	}

	meds := NewMedicationsRepo(db)
	m, err := meds.Create(ctx, medications.Medication{
		UserID:         u.ID,
		Name:           "Med",
		Dose:           "10mg",
		StartDate:      calendar.MustParse("2025-02-15"),
		DailyFrequency: 1,
		DayInterval:    1,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		t.Fatalf("create medication: %v", err)
	}

	cons := NewConsumptionsRepo(db)
	if _, err := cons.Create(ctx, consumptions.Consumption{MedicationID: m.ID, Date: calendar.MustParse("2025-02-16"), Time: "09:30", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("log: %v", err)
	}

	entries, err := cons.ListForMedications(ctx, u.ID, []int64{m.ID}, calendar.MustParse("2025-02-15"), calendar.MustParse("2025-02-21"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].Time != "09:30" || entries[0].MedicationName != "Med" {
		t.Fatalf("unexpected entries %+v", entries)
	}

	if err := meds.Delete(ctx, u.ID, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	left, err := cons.ListByMedication(ctx, m.ID, nil, nil)
	if err != nil || len(left) != 0 {
		t.Fatalf("expected cascade delete, got %v, %v", left, err)
	}
}
