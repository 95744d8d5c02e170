package consumptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"smartpill/internal/domain/medications"
	"smartpill/internal/middleware"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/logger"
	"smartpill/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/medications/{medicationID}/consumptions", func(cr chi.Router) {
		cr.Post("/", logConsumptionHandler(svc, log))
		cr.Get("/", listConsumptionsHandler(svc, log))
	})
}

type logConsumptionRequest struct {
	Date string `json:"date" example:"2025-02-16"`
	Time string `json:"time" example:"09:30"`
}

type consumptionResponse struct {
	ID           int64     `json:"id"`
	MedicationID int64     `json:"medication_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	CreatedAt    time.Time `json:"created_at"`
}

type listConsumptionsResponse struct {
	Consumptions []consumptionResponse `json:"consumptions"`
}

// logConsumptionHandler godoc
// @Summary Registrar toma
// @Description Registra que el usuario tomó el medicamento en date/time.
// @Tags consumptions
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param medicationID path int true "ID del medicamento"
// @Param payload body logConsumptionRequest true "Toma"
// @Success 201 {object} consumptionResponse
// @Failure 400 {object} respond.ErrorResponse "validación / Invalid medication id"
// @Failure 404 {object} respond.ErrorResponse "Medication not found"
// @Router /medications/{medicationID}/consumptions [post]
func logConsumptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		medID := medications.ParseID(chi.URLParam(r, "medicationID"))

		// Campos con tipo incorrecto quedan vacíos y caen en "is required".
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw == nil {
			respond.Error(w, http.StatusBadRequest, "Invalid body")
			return
		}
		in := LogInput{Date: rawString(raw["date"]), Time: rawString(raw["time"])}

		c, err := svc.Log(r.Context(), userID, medID, in)
		if err != nil {
			writeError(w, log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toConsumptionResponse(c))
	}
}

// listConsumptionsHandler godoc
// @Summary Listar tomas de un medicamento
// @Tags consumptions
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param medicationID path int true "ID del medicamento"
// @Param from query string false "desde (YYYY-MM-DD, inclusive)"
// @Param to query string false "hasta (YYYY-MM-DD, inclusive)"
// @Success 200 {object} listConsumptionsResponse
// @Failure 400 {object} respond.ErrorResponse "Invalid from / Invalid to"
// @Failure 404 {object} respond.ErrorResponse "Medication not found"
// @Router /medications/{medicationID}/consumptions [get]
func listConsumptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		medID := medications.ParseID(chi.URLParam(r, "medicationID"))

		q := r.URL.Query()
		items, err := svc.ListByMedication(r.Context(), userID, medID, ListInput{From: q.Get("from"), To: q.Get("to")})
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]consumptionResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toConsumptionResponse(c))
		}
		respond.JSON(w, http.StatusOK, listConsumptionsResponse{Consumptions: out})
	}
}

func rawString(v json.RawMessage) string {
	var s string
	if len(v) == 0 || json.Unmarshal(v, &s) != nil {
		return ""
	}
	return s
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		respond.Error(w, http.StatusBadRequest, ve.Message)
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Medication not found")
		return
	}
	log.Error("consumptions request failed", map[string]any{"err": err.Error()})
	respond.Error(w, http.StatusInternalServerError, "internal error")
}

func toConsumptionResponse(c Consumption) consumptionResponse {
	return consumptionResponse{
		ID:           c.ID,
		MedicationID: c.MedicationID,
		Date:         c.Date.String(),
		Time:         c.Time,
		CreatedAt:    c.CreatedAt,
	}
}
