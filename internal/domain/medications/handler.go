package medications

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"smartpill/internal/middleware"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/logger"
	"smartpill/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const msgNotFound = "Medication not found"

// RegisterRoutes espera un router que ya pasó por middleware.RequireAuth.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc, log))
		mr.Post("/", createMedicationHandler(svc, log))

		mr.Get("/{medicationID}", getMedicationHandler(svc, log))
		mr.Put("/{medicationID}", updateMedicationHandler(svc, log))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc, log))
	})
}

// medicationRequest documenta el body; el decode real va por decodeInput
// para poder distinguir "no es entero positivo" de un JSON roto.
type medicationRequest struct {
	Name           string `json:"name" example:"Ibuprofeno"`
	Dose           string `json:"dose" example:"400mg"`
	StartDate      string `json:"start_date" example:"2025-02-15"` // YYYY-MM-DD
	DailyFrequency int    `json:"daily_frequency" example:"2"`
	DayInterval    int    `json:"day_interval" example:"1"`
}

type medicationResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Dose           string    `json:"dose"`
	StartDate      string    `json:"start_date"`
	DailyFrequency int       `json:"daily_frequency"`
	DayInterval    int       `json:"day_interval"`
	CreatedAt      time.Time `json:"created_at"`
}

type listMedicationsResponse struct {
	Medications []medicationResponse `json:"medications"`
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Description Devuelve todos los medicamentos del usuario autenticado, más recientes primero.
// @Tags medications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} listMedicationsResponse
// @Failure 401 {object} respond.ErrorResponse "Invalid or missing token"
// @Failure 500 {object} respond.ErrorResponse "internal error"
// @Router /medications [get]
func listMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		respond.JSON(w, http.StatusOK, listMedicationsResponse{Medications: out})
	}
}

// createMedicationHandler godoc
// @Summary Crear medicamento
// @Description Crea un medicamento con su esquema: daily_frequency tomas cada day_interval días desde start_date.
// @Tags medications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body medicationRequest true "Medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {object} respond.ErrorResponse "validación"
// @Failure 401 {object} respond.ErrorResponse "Invalid or missing token"
// @Router /medications [post]
func createMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		in, err := decodeInput(r)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid body")
			return
		}

		m, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			writeError(w, log, err)
			return
		}
		respond.JSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param medicationID path int true "ID del medicamento"
// @Success 200 {object} medicationResponse
// @Failure 400 {object} respond.ErrorResponse "Invalid medication id"
// @Failure 404 {object} respond.ErrorResponse "Medication not found"
// @Router /medications/{medicationID} [get]
func getMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		m, err := svc.Get(r.Context(), userID, ParseID(chi.URLParam(r, "medicationID")))
		if err != nil {
			writeError(w, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary Reemplazar medicamento
// @Description PUT completo: todos los campos son obligatorios.
// @Tags medications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param medicationID path int true "ID del medicamento"
// @Param payload body medicationRequest true "Medicamento"
// @Success 200 {object} medicationResponse
// @Failure 400 {object} respond.ErrorResponse "validación / Invalid medication id"
// @Failure 404 {object} respond.ErrorResponse "Medication not found"
// @Router /medications/{medicationID} [put]
func updateMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		in, err := decodeInput(r)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid body")
			return
		}

		m, err := svc.Update(r.Context(), userID, ParseID(chi.URLParam(r, "medicationID")), in)
		if err != nil {
			writeError(w, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar medicamento
// @Description Borra el medicamento y sus tomas registradas.
// @Tags medications
// @Param Authorization header string true "Bearer token"
// @Param medicationID path int true "ID del medicamento"
// @Success 204
// @Failure 400 {object} respond.ErrorResponse "Invalid medication id"
// @Failure 404 {object} respond.ErrorResponse "Medication not found"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, ParseID(chi.URLParam(r, "medicationID"))); err != nil {
			writeError(w, log, err)
			return
		}
		respond.NoContent(w)
	}
}

// ParseID devuelve 0 si raw no es un entero positivo; Service lo rechaza con ErrInvalidID.
func ParseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// decodeInput lee el body como objeto y toma cada campo con su tipo esperado.
// Un campo con tipo incorrecto queda en zero value y lo rechaza la validación.
func decodeInput(r *http.Request) (Input, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return Input{}, err
	}
	if raw == nil {
		return Input{}, errors.New("body must be an object")
	}

	return Input{
		Name:           rawString(raw["name"]),
		Dose:           rawString(raw["dose"]),
		StartDate:      rawString(raw["start_date"]),
		DailyFrequency: rawPositiveInt(raw["daily_frequency"]),
		DayInterval:    rawPositiveInt(raw["day_interval"]),
	}, nil
}

func rawString(v json.RawMessage) string {
	var s string
	if len(v) == 0 || json.Unmarshal(v, &s) != nil {
		return ""
	}
	return s
}

// rawPositiveInt acepta solo números JSON enteros >= 1 ("2", 2.5 y true no valen).
func rawPositiveInt(v json.RawMessage) int {
	var f float64
	if len(v) == 0 || json.Unmarshal(v, &f) != nil {
		return 0
	}
	if f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		respond.Error(w, http.StatusBadRequest, ve.Message)
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respond.Error(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, apperrors.ErrUnauthorized):
		respond.Error(w, http.StatusUnauthorized, middleware.MsgUnauthorized)
	default:
		log.Error("medications request failed", map[string]any{"err": err.Error()})
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:             m.ID,
		Name:           m.Name,
		Dose:           m.Dose,
		StartDate:      m.StartDate.String(),
		DailyFrequency: m.DailyFrequency,
		DayInterval:    m.DayInterval,
		CreatedAt:      m.CreatedAt,
	}
}
