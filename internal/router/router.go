package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	_ "smartpill/docs"

	"smartpill/internal/adapters/storage"
	"smartpill/internal/domain/consumptions"
	"smartpill/internal/domain/medications"
	"smartpill/internal/domain/report"
	"smartpill/internal/domain/users"
	"smartpill/internal/middleware"
	"smartpill/internal/platform/logger"
	"smartpill/internal/platform/respond"
	"smartpill/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	defaultCORSOrigin = "http://localhost:3001"
	healthPingTimeout = 2 * time.Second
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)
	TokenIssuer  auth.TokenIssuer  // sin issuer /auth/login responde 500

	// Opcional: si no viene, in-memory.
	Store *storage.Store

	Logger     logger.Logger
	CORSOrigin string

	// BcryptCost > 0 pisa el costo por defecto (tests).
	BcryptCost int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = storage.Memory()
	}

	origin := strings.TrimSpace(opts.CORSOrigin)
	if origin == "" {
		origin = defaultCORSOrigin
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// AuthContext antes que RequestLog para que el log tenga user_id.
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLog(log))

	r.Get("/health", healthHandler(store, log))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(store.Users, opts.TokenIssuer)
	if opts.BcryptCost > 0 {
		usersSvc = usersSvc.WithHashCost(opts.BcryptCost)
	}
	medsSvc := medications.NewService(store.Medications)
	consSvc := consumptions.NewService(store.Consumptions, store.Medications)
	reportSvc := report.NewService(store.Medications, store.Consumptions, log)

	// Rutas públicas
	users.RegisterRoutes(r, usersSvc, log)

	// Rutas autenticadas
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.RequireAuth)

		users.RegisterAuthedRoutes(ar)
		medications.RegisterRoutes(ar, medsSvc, log)
		consumptions.RegisterRoutes(ar, consSvc, log)
		report.RegisterRoutes(ar, reportSvc, log)
	})

	return r
}

// healthHandler responde 503 si la base no contesta al ping.
func healthHandler(store *storage.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.Error("health: database ping failed", map[string]any{"err": err.Error(), "driver": store.Driver})
			respond.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
