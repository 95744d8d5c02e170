// Package report arma el reporte semanal de tomas esperadas vs registradas.
package report

import (
	"context"
	"fmt"
	"strings"

	"smartpill/internal/domain/consumptions"
	"smartpill/internal/domain/medications"
	"smartpill/internal/domain/schedule"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/calendar"
	"smartpill/internal/platform/logger"
)

// MedicationDirectory devuelve todos los medicamentos del usuario,
// created_at DESC. Nunca incluye medicamentos de otro usuario.
type MedicationDirectory interface {
	ListByUser(ctx context.Context, userID int64) ([]medications.Medication, error)
}

// ConsumptionStore devuelve tomas de medicamentos del usuario en [from, to],
// ordenadas por (date, time).
type ConsumptionStore interface {
	ListForMedications(ctx context.Context, userID int64, medicationIDs []int64, from, to calendar.Date) ([]consumptions.Entry, error)
}

type Service struct {
	meds  MedicationDirectory
	store ConsumptionStore
	log   logger.Logger
}

func NewService(meds MedicationDirectory, store ConsumptionStore, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{meds: meds, store: store, log: log}
}

// ParseStartDate valida el parámetro start_date antes de cualquier cálculo.
func ParseStartDate(raw string) (calendar.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return calendar.Date{}, apperrors.Missing("start_date", "start_date is required")
	}
	d, err := calendar.Parse(raw)
	// la ventana entera tiene que seguir siendo YYYY-MM-DD
	if err != nil || d.AddDays(Days-1).Year > calendar.MaxYear {
		return calendar.Date{}, apperrors.InvalidDate("start_date", "Invalid start_date (use YYYY-MM-DD)")
	}
	return d, nil
}

// BuildWeekly hace como mucho dos lecturas: medicamentos y tomas de la ventana.
func (s *Service) BuildWeekly(ctx context.Context, userID int64, startDateParam string) ([]DayResult, error) {
	start, err := ParseStartDate(startDateParam)
	if err != nil {
		return nil, err
	}

	meds, err := s.meds.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}

	days := ExpectedWindow(start, meds)
	if len(meds) == 0 {
		return days, nil
	}

	ids := make([]int64, 0, len(meds))
	for _, m := range meds {
		ids = append(ids, m.ID)
	}

	entries, err := s.store.ListForMedications(ctx, userID, ids, start, start.AddDays(Days-1))
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}

	if dropped := FillActual(days, entries); dropped > 0 {
		// No debería pasar si el rango de la query y las fechas generadas coinciden.
		s.log.Debug("consumptions outside report window dropped", map[string]any{
			"user_id":    userID,
			"start_date": start.String(),
			"dropped":    dropped,
		})
	}
	return days, nil
}

// ExpectedWindow genera los 7 días desde start con las tomas esperadas de
// cada medicamento, en el orden en que vienen los medicamentos.
func ExpectedWindow(start calendar.Date, meds []medications.Medication) []DayResult {
	days := make([]DayResult, 0, Days)
	for i := 0; i < Days; i++ {
		date := start.AddDays(i)

		expected := []schedule.ExpectedConsumption{}
		for _, m := range meds {
			expected = append(expected, schedule.ExpectedSlotsOnDate(m, date)...)
		}

		days = append(days, DayResult{
			Date:     date.String(),
			Expected: expected,
			Actual:   []ActualConsumption{},
		})
	}
	return days
}

// FillActual reparte entries por fecha exacta y devuelve cuántas no
// correspondían a ningún día de la ventana.
func FillActual(days []DayResult, entries []consumptions.Entry) int {
	index := make(map[string]int, len(days))
	for i, d := range days {
		index[d.Date] = i
	}

	dropped := 0
	for _, e := range entries {
		date := e.Date.String()
		i, ok := index[date]
		if !ok {
			dropped++
			continue
		}
		days[i].Actual = append(days[i].Actual, ActualConsumption{
			ID:             e.ID,
			MedicationID:   e.MedicationID,
			MedicationName: e.MedicationName,
			Date:           date,
			Time:           e.Time,
		})
	}
	return dropped
}
