// @title SmartPill API
// @version 1.0
// @description Seguimiento de medicación: medicamentos, tomas registradas y reporte semanal esperado vs real.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartpill/internal/adapters/auth/jwt"
	"smartpill/internal/adapters/storage"
	"smartpill/internal/platform/config"
	"smartpill/internal/platform/logger"
	"smartpill/internal/router"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smartpill",
		Short:         "SmartPill medication tracking API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), false)
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newHealthcheckCmd())
	root.AddCommand(newReportCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), dev)
		},
	}
	cmd.Flags().BoolVar(&dev, "dev", false, "accept X-Debug-User-ID instead of JWT (local only)")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema for the configured DB_DRIVER",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			store, err := storage.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			log.Info("schema applied", map[string]any{"driver": store.Driver})
			return nil
		},
	}
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
}

func runServe(ctx context.Context, dev bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	store, err := storage.Open(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	opts := router.Options{
		AuthVerifier: tokens,
		TokenIssuer:  tokens,
		Store:        store,
		Logger:       log,
		CORSOrigin:   cfg.CORSOrigin,
	}
	if dev {
		opts.AuthVerifier = nil // sin verifier para modo dev
		log.Warn("dev mode: X-Debug-User-ID accepted, JWT not verified", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": store.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
