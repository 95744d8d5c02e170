package consumptions

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"smartpill/internal/domain/medications"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

// MedicationLookup resuelve el dueño del medicamento. medications.Repository lo cumple.
type MedicationLookup interface {
	GetByID(ctx context.Context, userID, id int64) (medications.Medication, error)
}

type Service struct {
	repo Repository
	meds MedicationLookup
	now  func() time.Time
}

func NewService(repo Repository, meds MedicationLookup) *Service {
	return &Service{
		repo: repo,
		meds: meds,
		now:  time.Now,
	}
}

type LogInput struct {
	Date string
	Time string
}

var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

func (in LogInput) validate() (calendar.Date, string, error) {
	date := strings.TrimSpace(in.Date)
	clock := strings.TrimSpace(in.Time)

	if date == "" {
		return calendar.Date{}, "", apperrors.Missing("date", "Date is required")
	}
	if clock == "" {
		return calendar.Date{}, "", apperrors.Missing("time", "Time is required")
	}
	d, err := calendar.Parse(date)
	if err != nil {
		return calendar.Date{}, "", apperrors.InvalidDate("date", "Invalid date (use YYYY-MM-DD)")
	}
	if !validClock(clock) {
		return calendar.Date{}, "", apperrors.Invalid("time", "Invalid time (use HH:MM or HH:MM:SS)")
	}
	return d, clock, nil
}

// validClock: hora 0-23, minutos y segundos 0-59.
func validClock(s string) bool {
	if !timePattern.MatchString(s) {
		return false
	}
	parts := strings.Split(s, ":")
	limits := []int{23, 59, 59}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > limits[i] {
			return false
		}
	}
	return true
}

// Log registra una toma. Orden de chequeo: id, body, dueño del medicamento.
func (s *Service) Log(ctx context.Context, userID, medicationID int64, in LogInput) (Consumption, error) {
	if medicationID <= 0 {
		return Consumption{}, medications.ErrInvalidID
	}
	date, clock, err := in.validate()
	if err != nil {
		return Consumption{}, err
	}
	if _, err := s.meds.GetByID(ctx, userID, medicationID); err != nil {
		return Consumption{}, err
	}

	return s.repo.Create(ctx, Consumption{
		MedicationID: medicationID,
		Date:         date,
		Time:         clock,
		CreatedAt:    s.now().UTC(),
	})
}

// ListInput: límites opcionales e inclusivos en YYYY-MM-DD.
type ListInput struct {
	From string
	To   string
}

func (s *Service) ListByMedication(ctx context.Context, userID, medicationID int64, in ListInput) ([]Consumption, error) {
	if medicationID <= 0 {
		return nil, medications.ErrInvalidID
	}

	from, err := optionalDate("from", in.From)
	if err != nil {
		return nil, err
	}
	to, err := optionalDate("to", in.To)
	if err != nil {
		return nil, err
	}

	if _, err := s.meds.GetByID(ctx, userID, medicationID); err != nil {
		return nil, err
	}
	return s.repo.ListByMedication(ctx, medicationID, from, to)
}

func optionalDate(field, raw string) (*calendar.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := calendar.Parse(raw)
	if err != nil {
		return nil, apperrors.InvalidDate(field, "Invalid "+field+" (use YYYY-MM-DD)")
	}
	return &d, nil
}
