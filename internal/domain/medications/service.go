package medications

import (
	"context"
	"strings"
	"time"

	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input sirve para create y update (PUT reemplaza el registro completo).
// Los enteros inválidos llegan como 0 y se rechazan acá.
type Input struct {
	Name           string
	Dose           string
	StartDate      string
	DailyFrequency int
	DayInterval    int
}

// validate devuelve el primer error, en el mismo orden que ve el cliente.
func (in Input) validate() (calendar.Date, error) {
	if strings.TrimSpace(in.Name) == "" {
		return calendar.Date{}, apperrors.Missing("name", "Name is required")
	}
	if strings.TrimSpace(in.Dose) == "" {
		return calendar.Date{}, apperrors.Missing("dose", "Dose is required")
	}
	if strings.TrimSpace(in.StartDate) == "" {
		return calendar.Date{}, apperrors.Missing("start_date", "Start date is required")
	}
	if in.DailyFrequency < 1 {
		return calendar.Date{}, apperrors.Invalid("daily_frequency", "Daily frequency must be a positive integer")
	}
	if in.DayInterval < 1 {
		return calendar.Date{}, apperrors.Invalid("day_interval", "Day interval must be a positive integer")
	}
	start, err := calendar.Parse(strings.TrimSpace(in.StartDate))
	if err != nil {
		return calendar.Date{}, apperrors.InvalidDate("start_date", "Invalid start date")
	}
	return start, nil
}

func (s *Service) Create(ctx context.Context, userID int64, in Input) (Medication, error) {
	if userID <= 0 {
		return Medication{}, apperrors.ErrUnauthorized
	}
	start, err := in.validate()
	if err != nil {
		return Medication{}, err
	}

	return s.repo.Create(ctx, Medication{
		UserID:         userID,
		Name:           strings.TrimSpace(in.Name),
		Dose:           strings.TrimSpace(in.Dose),
		StartDate:      start,
		DailyFrequency: in.DailyFrequency,
		DayInterval:    in.DayInterval,
		CreatedAt:      s.now().UTC(),
	})
}

func (s *Service) Get(ctx context.Context, userID, id int64) (Medication, error) {
	if id <= 0 {
		return Medication{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Medication, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id int64, in Input) (Medication, error) {
	start, err := in.validate()
	if err != nil {
		return Medication{}, err
	}
	if id <= 0 {
		return Medication{}, ErrInvalidID
	}

	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return Medication{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.Dose = strings.TrimSpace(in.Dose)
	current.StartDate = start
	current.DailyFrequency = in.DailyFrequency
	current.DayInterval = in.DayInterval

	return s.repo.Update(ctx, current)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, userID, id)
}

// ErrInvalidID también lo usan las rutas anidadas (/medications/{id}/...).
var ErrInvalidID = apperrors.Invalid("id", "Invalid medication id")
