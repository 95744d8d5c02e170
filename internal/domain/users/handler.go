package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"smartpill/internal/middleware"
	"smartpill/internal/platform/apperrors"
	"smartpill/internal/platform/logger"
	"smartpill/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /auth (público). /hello va en el grupo autenticado.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, log))
	})
}

func RegisterAuthedRoutes(r chi.Router) {
	r.Get("/hello", helloHandler())
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type helloResponse struct {
	Message string `json:"message"`
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea una cuenta con email y password (mínimo 8 caracteres). El email se guarda en minúsculas.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 201 {object} userResponse
// @Failure 400 {object} respond.ErrorResponse "email inválido / password corto"
// @Failure 409 {object} respond.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid body")
			return
		}

		u, err := svc.Register(r.Context(), Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			if ve, ok := apperrors.AsValidation(err); ok {
				respond.Error(w, http.StatusBadRequest, ve.Message)
				return
			}
			if errors.Is(err, apperrors.ErrConflict) {
				respond.Error(w, http.StatusConflict, "Email already registered")
				return
			}
			log.Error("register failed", map[string]any{"err": err.Error()})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		respond.JSON(w, http.StatusCreated, userResponse{ID: u.ID, Email: u.Email})
	}
}

// loginHandler godoc
// @Summary Login
// @Description Valida credenciales y devuelve un JWT HS256 (expira según JWT_TTL, por defecto 1h).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Credenciales"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} respond.ErrorResponse "email o password faltante"
// @Failure 401 {object} respond.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid body")
			return
		}

		token, err := svc.Login(r.Context(), Credentials{Email: req.Email, Password: req.Password})
		if err != nil {
			if ve, ok := apperrors.AsValidation(err); ok {
				respond.Error(w, http.StatusBadRequest, ve.Message)
				return
			}
			if errors.Is(err, apperrors.ErrUnauthorized) {
				respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			log.Error("login failed", map[string]any{"err": err.Error()})
			respond.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

// helloHandler godoc
// @Summary Saludo autenticado
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} helloResponse
// @Failure 401 {object} respond.ErrorResponse "Invalid or missing token"
// @Router /hello [get]
func helloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		respond.JSON(w, http.StatusOK, helloResponse{Message: Greeting(claims.Email)})
	}
}
