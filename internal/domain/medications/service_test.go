package medications

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

// -------------------------
// Test repo
// -------------------------

type testRepo struct {
	nextID int64
	byID   map[int64]Medication
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Medication{}}
}

func (r *testRepo) Create(ctx context.Context, m Medication) (Medication, error) {
	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m, nil
}

func (r *testRepo) GetByID(ctx context.Context, userID, id int64) (Medication, error) {
	m, ok := r.byID[id]
	if !ok || m.UserID != userID {
		return Medication{}, apperrors.ErrNotFound
	}
	return m, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID int64) ([]Medication, error) {
	out := []Medication{}
	for _, m := range r.byID {
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

func (r *testRepo) Update(ctx context.Context, m Medication) (Medication, error) {
	cur, ok := r.byID[m.ID]
	if !ok || cur.UserID != m.UserID {
		return Medication{}, apperrors.ErrNotFound
	}
	r.byID[m.ID] = m
	return m, nil
}

func (r *testRepo) Delete(ctx context.Context, userID, id int64) error {
	m, ok := r.byID[id]
	if !ok || m.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)

	// reloj que avanza un segundo por llamada para que el orden sea estable
	base := time.Date(2025, 2, 15, 8, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return svc, repo
}

func validInput() Input {
	return Input{
		Name:           "Ibuprofeno",
		Dose:           "400mg",
		StartDate:      "2025-02-15",
		DailyFrequency: 2,
		DayInterval:    1,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_OK(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Name = "  Ibuprofeno  "
	m, err := svc.Create(context.Background(), 7, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 1 || m.UserID != 7 || m.Name != "Ibuprofeno" {
		t.Fatalf("unexpected medication: %+v", m)
	}
	if !m.StartDate.Equal(calendar.MustParse("2025-02-15")) {
		t.Fatalf("unexpected start date: %s", m.StartDate)
	}
	if m.CreatedAt.IsZero() {
		t.Fatalf("created_at must be set")
	}
}

func TestService_Create_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name string
		mut  func(*Input)
		msg  string
	}{
		{"missing name", func(in *Input) { in.Name = " " }, "Name is required"},
		{"missing dose", func(in *Input) { in.Dose = "" }, "Dose is required"},
		{"missing start", func(in *Input) { in.StartDate = "" }, "Start date is required"},
		{"zero frequency", func(in *Input) { in.DailyFrequency = 0 }, "Daily frequency must be a positive integer"},
		{"negative interval", func(in *Input) { in.DayInterval = -2 }, "Day interval must be a positive integer"},
		{"bad start", func(in *Input) { in.StartDate = "2025-02-30" }, "Invalid start date"},
		{"first error wins", func(in *Input) { in.Name = ""; in.Dose = "" }, "Name is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)

			_, err := svc.Create(context.Background(), 1, in)
			ve, ok := apperrors.AsValidation(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Message != tc.msg {
				t.Fatalf("expected %q, got %q", tc.msg, ve.Message)
			}
		})
	}
}

func TestService_Create_RequiresUser(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), 0, validInput()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_ListByUser_NewestFirstAndScoped(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, _ := svc.Create(ctx, 1, validInput())
	second, _ := svc.Create(ctx, 1, validInput())
	_, _ = svc.Create(ctx, 2, validInput())

	items, err := svc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 medications, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got ids %d,%d", items[0].ID, items[1].ID)
	}
}

func TestService_GetUpdateDelete_OtherUserIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	m, _ := svc.Create(ctx, 1, validInput())

	if _, err := svc.Get(ctx, 2, m.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Update(ctx, 2, m.ID, validInput()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("update: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 2, m.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestService_Update_ReplacesFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	m, _ := svc.Create(ctx, 1, validInput())

	in := Input{Name: "Paracetamol", Dose: "1g", StartDate: "2025-03-01", DailyFrequency: 3, DayInterval: 2}
	got, err := svc.Update(ctx, 1, m.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Paracetamol" || got.DailyFrequency != 3 || got.DayInterval != 2 || got.StartDate.String() != "2025-03-01" {
		t.Fatalf("unexpected updated medication: %+v", got)
	}
	if !got.CreatedAt.Equal(m.CreatedAt) {
		t.Fatalf("created_at must not change on update")
	}
}

func TestService_InvalidID(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Get(ctx, 1, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("get: expected invalid input, got %v", err)
	}
	if err := svc.Delete(ctx, 1, -1); err != ErrInvalidID {
		t.Fatalf("delete: expected ErrInvalidID, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	cases := map[string]int64{
		"1":   1,
		"42":  42,
		"0":   0,
		"-3":  0,
		"abc": 0,
		"1.5": 0,
		"":    0,
	}
	for raw, want := range cases {
		if got := ParseID(raw); got != want {
			t.Fatalf("ParseID(%q) = %d, want %d", raw, got, want)
		}
	}
}
