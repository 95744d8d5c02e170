package consumptions

import (
	"context"
	"errors"
	"testing"

	"smartpill/internal/domain/medications"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

type testMeds map[int64]medications.Medication

func (m testMeds) GetByID(ctx context.Context, userID, id int64) (medications.Medication, error) {
	med, ok := m[id]
	if !ok || med.UserID != userID {
		return medications.Medication{}, apperrors.ErrNotFound
	}
	return med, nil
}

type testRepo struct {
	nextID int64
	items  []Consumption

	lastFrom, lastTo *calendar.Date
}

func (r *testRepo) Create(ctx context.Context, c Consumption) (Consumption, error) {
	r.nextID++
	c.ID = r.nextID
	r.items = append(r.items, c)
	return c, nil
}

func (r *testRepo) ListByMedication(ctx context.Context, medicationID int64, from, to *calendar.Date) ([]Consumption, error) {
	r.lastFrom, r.lastTo = from, to
	out := []Consumption{}
	for _, c := range r.items {
		if c.MedicationID == medicationID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) ListForMedications(ctx context.Context, userID int64, ids []int64, from, to calendar.Date) ([]Entry, error) {
	return nil, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	meds := testMeds{
		1: {ID: 1, UserID: 100, Name: "Ibuprofeno"},
		2: {ID: 2, UserID: 200, Name: "Paracetamol"},
	}
	return NewService(repo, meds), repo
}

func TestService_Log_OK(t *testing.T) {
	svc, repo := newTestService()

	c, err := svc.Log(context.Background(), 100, 1, LogInput{Date: " 2025-02-16 ", Time: " 9:30 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 1 || c.MedicationID != 1 || c.Date.String() != "2025-02-16" || c.Time != "9:30" {
		t.Fatalf("unexpected consumption: %+v", c)
	}
	if c.CreatedAt.IsZero() {
		t.Fatalf("created_at must be set")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored consumption, got %d", len(repo.items))
	}
}

func TestService_Log_Validation(t *testing.T) {
	svc, repo := newTestService()

	cases := []struct {
		name string
		in   LogInput
		msg  string
	}{
		{"missing date", LogInput{Time: "08:00"}, "Date is required"},
		{"missing time", LogInput{Date: "2025-02-15"}, "Time is required"},
		{"bad date", LogInput{Date: "not-a-date", Time: "08:00"}, "Invalid date (use YYYY-MM-DD)"},
		{"nonexistent date", LogInput{Date: "2025-02-30", Time: "08:00"}, "Invalid date (use YYYY-MM-DD)"},
		{"hour 25", LogInput{Date: "2025-02-15", Time: "25:00"}, "Invalid time (use HH:MM or HH:MM:SS)"},
		{"minute 60", LogInput{Date: "2025-02-15", Time: "08:60"}, "Invalid time (use HH:MM or HH:MM:SS)"},
		{"second 60", LogInput{Date: "2025-02-15", Time: "08:00:60"}, "Invalid time (use HH:MM or HH:MM:SS)"},
		{"shape", LogInput{Date: "2025-02-15", Time: "8h"}, "Invalid time (use HH:MM or HH:MM:SS)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Log(context.Background(), 100, 1, tc.in)
			ve, ok := apperrors.AsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Message != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, ve.Message)
			}
		})
	}
	if len(repo.items) != 0 {
		t.Fatalf("nothing should be stored on validation errors")
	}
}

func TestService_Log_AcceptsSeconds(t *testing.T) {
	svc, _ := newTestService()

	c, err := svc.Log(context.Background(), 100, 1, LogInput{Date: "2025-02-15", Time: "23:59:59"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Time != "23:59:59" {
		t.Fatalf("time must be stored verbatim, got %q", c.Time)
	}
}

func TestService_Log_Ownership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.Log(ctx, 100, 2, LogInput{Date: "2025-02-15", Time: "08:00"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("other user's medication: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Log(ctx, 100, 999, LogInput{Date: "2025-02-15", Time: "08:00"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing medication: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Log(ctx, 100, 0, LogInput{Date: "2025-02-15", Time: "08:00"}); err != medications.ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestService_ListByMedication(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, _ = svc.Log(ctx, 100, 1, LogInput{Date: "2025-02-15", Time: "08:00"})

	items, err := svc.ListByMedication(ctx, 100, 1, ListInput{From: "2025-02-01", To: ""})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if repo.lastFrom == nil || repo.lastFrom.String() != "2025-02-01" || repo.lastTo != nil {
		t.Fatalf("unexpected bounds from=%v to=%v", repo.lastFrom, repo.lastTo)
	}

	if _, err := svc.ListByMedication(ctx, 100, 1, ListInput{To: "2025-13-01"}); err == nil {
		t.Fatalf("expected validation error for bad 'to'")
	}
	if _, err := svc.ListByMedication(ctx, 200, 1, ListInput{}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("other user: expected ErrNotFound, got %v", err)
	}
}
