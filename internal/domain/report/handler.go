package report

import (
	"net/http"

	"smartpill/internal/middleware"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/logger"
	"smartpill/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/consumption-report", weeklyReportHandler(svc, log))
}

// weeklyReportHandler godoc
// @Summary Reporte semanal de tomas
// @Description 7 días consecutivos desde start_date: tomas esperadas según el esquema de cada medicamento y tomas registradas.
// @Tags report
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string true "primer día (YYYY-MM-DD)"
// @Success 200 {array} DayResult
// @Failure 400 {object} respond.ErrorResponse "start_date is required / Invalid start_date (use YYYY-MM-DD)"
// @Failure 401 {object} respond.ErrorResponse "Invalid or missing token"
// @Failure 500 {object} respond.ErrorResponse "internal error"
// @Router /consumption-report [get]
func weeklyReportHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		days, err := svc.BuildWeekly(r.Context(), userID, r.URL.Query().Get("start_date"))
		if err != nil {
			if ve, ok := apperrors.AsValidation(err); ok {
				respond.Error(w, http.StatusBadRequest, ve.Message)
				return
			}
			log.Error("consumption report failed", map[string]any{"err": err.Error(), "user_id": userID})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		respond.JSON(w, http.StatusOK, days)
	}
}
