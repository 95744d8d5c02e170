package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected port: %q", cfg.Port)
	}
	if cfg.DBDriver != DriverSQLite {
		t.Fatalf("expected sqlite default, got %q", cfg.DBDriver)
	}
	if cfg.DBPath != "data/smartpill.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.JWTTTL != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", cfg.JWTTTL)
	}
	if cfg.CORSOrigin != "http://localhost:3001" {
		t.Fatalf("unexpected cors origin: %q", cfg.CORSOrigin)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "3000")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_DSN", "postgres://u:p@localhost:5432/smartpill")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected port 3000, got %q", cfg.Port)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Fatalf("DB_DSN should select postgres, got %q", cfg.DBDriver)
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %v", cfg.JWTTTL)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "mongo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when postgres has no dsn")
	}
}
