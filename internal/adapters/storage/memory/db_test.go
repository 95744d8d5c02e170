package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartpill/internal/domain/consumptions"
	"smartpill/internal/domain/medications"
	"smartpill/internal/domain/users"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

func TestUsers_DuplicateEmailConflict(t *testing.T) {
	db := NewDB()
	ctx := context.Background()

	if _, err := db.Users().Create(ctx, users.User{Email: "a@b.c", PasswordHash: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.Users().Create(ctx, users.User{Email: "a@b.c", PasswordHash: "y"}); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := db.Users().GetByEmail(ctx, "nobody@b.c"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMedications_DeleteCascadesConsumptions(t *testing.T) {
	db := NewDB()
	ctx := context.Background()

	m, _ := db.Medications().Create(ctx, medications.Medication{UserID: 1, Name: "A", StartDate: calendar.MustParse("2025-02-15"), DailyFrequency: 1, DayInterval: 1})
	if _, err := db.Consumptions().Create(ctx, consumptions.Consumption{MedicationID: m.ID, Date: calendar.MustParse("2025-02-15"), Time: "08:00"}); err != nil {
		t.Fatalf("log: %v", err)
	}

	if err := db.Medications().Delete(ctx, 2, m.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("other user delete: expected ErrNotFound, got %v", err)
	}
	if err := db.Medications().Delete(ctx, 1, m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, _ := db.Consumptions().ListByMedication(ctx, m.ID, nil, nil)
	if len(items) != 0 {
		t.Fatalf("consumptions must be deleted with the medication, got %d", len(items))
	}
}

func TestConsumptions_ListForMedications_ScopedAndOrdered(t *testing.T) {
	db := NewDB()
	ctx := context.Background()
	now := time.Now()

	alice, _ := db.Medications().Create(ctx, medications.Medication{UserID: 1, Name: "Alice Med", CreatedAt: now})
	bob, _ := db.Medications().Create(ctx, medications.Medication{UserID: 2, Name: "Bob Med", CreatedAt: now})

	logAt := func(medID int64, date, clock string) {
		if _, err := db.Consumptions().Create(ctx, consumptions.Consumption{MedicationID: medID, Date: calendar.MustParse(date), Time: clock}); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	logAt(alice.ID, "2025-02-16", "20:00")
	logAt(alice.ID, "2025-02-16", "08:00")
	logAt(alice.ID, "2025-02-15", "23:00")
	logAt(alice.ID, "2025-02-22", "08:00") // fuera de la ventana
	logAt(bob.ID, "2025-02-16", "08:00")

	// bob.ID en la lista no debe filtrar nada de Bob para Alice
	got, err := db.Consumptions().ListForMedications(ctx, 1, []int64{alice.ID, bob.ID}, calendar.MustParse("2025-02-15"), calendar.MustParse("2025-02-21"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(got), got)
	}
	want := []string{"2025-02-15 23:00", "2025-02-16 08:00", "2025-02-16 20:00"}
	for i, w := range want {
		if g := got[i].Date.String() + " " + got[i].Time; g != w {
			t.Fatalf("entry %d: expected %s, got %s", i, w, g)
		}
		if got[i].MedicationName != "Alice Med" {
			t.Fatalf("entry %d: unexpected medication %q", i, got[i].MedicationName)
		}
	}
}

func TestConsumptions_CreateUnknownMedication(t *testing.T) {
	db := NewDB()

	_, err := db.Consumptions().Create(context.Background(), consumptions.Consumption{MedicationID: 42, Date: calendar.MustParse("2025-02-15"), Time: "08:00"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
