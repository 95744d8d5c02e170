package calendar

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"2025-02-15", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-02-30", false},
		{"2025-13-01", false},
		{"2025-00-10", false},
		{"2025-04-31", false},
		{"2025-2-15", false},
		{"25-02-15", false},
		{"2025/02/15", false},
		{"not-a-date", false},
		{" 2025-02-15", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValid(tc.in); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParse_String_RoundTrip(t *testing.T) {
	d, err := Parse("2025-03-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 9 {
		t.Fatalf("unexpected date: %+v", d)
	}
	if d.String() != "2025-03-09" {
		t.Fatalf("expected 2025-03-09, got %s", d.String())
	}
}

func TestDaysBetween(t *testing.T) {
	a := MustParse("2025-02-15")

	if got := DaysBetween(a, a); got != 0 {
		t.Fatalf("same day: expected 0, got %d", got)
	}
	if got := DaysBetween(a, MustParse("2025-03-01")); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
	if got := DaysBetween(MustParse("2025-03-01"), a); got != -14 {
		t.Fatalf("expected -14, got %d", got)
	}
	if got := DaysBetween(MustParse("2024-12-31"), MustParse("2025-01-01")); got != 1 {
		t.Fatalf("year boundary: expected 1, got %d", got)
	}
	if got := DaysBetween(MustParse("1969-12-31"), MustParse("1970-01-02")); got != 2 {
		t.Fatalf("epoch boundary: expected 2, got %d", got)
	}
}

func TestDaysBetween_AcrossDSTTransitions(t *testing.T) {
	// Cambios de horario en EU (marzo) y US (noviembre); no deben alterar el conteo.
	if got := DaysBetween(MustParse("2025-03-29"), MustParse("2025-03-31")); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := DaysBetween(MustParse("2025-11-01"), MustParse("2025-11-03")); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestAddDays(t *testing.T) {
	d := MustParse("2025-02-26")

	if got := d.AddDays(3).String(); got != "2025-03-01" {
		t.Fatalf("expected 2025-03-01, got %s", got)
	}
	if got := d.AddDays(-26).String(); got != "2025-01-31" {
		t.Fatalf("expected 2025-01-31, got %s", got)
	}
	if got := MustParse("2024-02-28").AddDays(1).String(); got != "2024-02-29" {
		t.Fatalf("leap year: expected 2024-02-29, got %s", got)
	}
}

func TestCompare(t *testing.T) {
	a := MustParse("2025-02-15")
	b := MustParse("2025-02-16")

	if !a.Before(b) || a.After(b) || a.Equal(b) {
		t.Fatalf("unexpected ordering between %s and %s", a, b)
	}
	if !b.After(a) {
		t.Fatalf("expected %s after %s", b, a)
	}
}
