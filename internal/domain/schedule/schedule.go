// Package schedule decide qué tomas se esperan de un medicamento en un día.
//
// Todo es función pura de (medicamento, fecha): nada se persiste ni se cachea,
// cada reporte recalcula las tomas esperadas con el registro actual.
package schedule

import (
	"smartpill/internal/domain/medications"
	"smartpill/internal/platform/calendar"
)

// ExpectedConsumption es una toma esperada; solo la identifica
// (medicamento, DoseIndex, fecha).
type ExpectedConsumption struct {
	MedicationID   int64  `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	DoseIndex      int    `json:"dose_index"` // 1..DailyFrequency
}

// IsDoseDay: date cae en start_date + k*day_interval, k >= 0.
func IsDoseDay(m medications.Medication, date calendar.Date) bool {
	if m.DayInterval < 1 || m.StartDate.IsZero() {
		return false
	}
	delta := calendar.DaysBetween(m.StartDate, date)
	return delta >= 0 && delta%m.DayInterval == 0
}

// ExpectedSlotsOnDate devuelve DailyFrequency tomas (DoseIndex 1..N) en días
// de toma y nil en el resto.
func ExpectedSlotsOnDate(m medications.Medication, date calendar.Date) []ExpectedConsumption {
	if !IsDoseDay(m, date) || m.DailyFrequency < 1 {
		return nil
	}

	out := make([]ExpectedConsumption, 0, m.DailyFrequency)
	for i := 1; i <= m.DailyFrequency; i++ {
		out = append(out, ExpectedConsumption{
			MedicationID:   m.ID,
			MedicationName: m.Name,
			DoseIndex:      i,
		})
	}
	return out
}
