package report

import "smartpill/internal/domain/schedule"

// Days es el largo fijo de la ventana del reporte.
const Days = 7

// ActualConsumption es una toma registrada tal como se muestra en el reporte.
type ActualConsumption struct {
	ID             int64  `json:"id"`
	MedicationID   int64  `json:"medication_id"`
	MedicationName string `json:"medication_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// DayResult: Expected y Actual nunca son nil, así el JSON siempre trae arrays.
type DayResult struct {
	Date     string                         `json:"date"`
	Expected []schedule.ExpectedConsumption `json:"expected"`
	Actual   []ActualConsumption            `json:"actual"`
}
