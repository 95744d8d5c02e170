package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required")

type Config struct {
	Port string

	DBDriver string
	DBPath   string // sqlite
	DBDSN    string // postgres

	JWTSecret string
	JWTTTL    time.Duration

	LogLevel  string
	LogFormat string
	AppName   string

	CORSOrigin string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load lee .env (si existe), un archivo de config opcional y variables de entorno.
// Las variables de entorno siempre ganan.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	configName := "config"
	if name := strings.TrimSpace(os.Getenv("CONFIG_NAME")); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "")
	v.SetDefault("DB_PATH", "data/smartpill.db")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "smartpill")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3001")
	v.SetDefault("READ_TIMEOUT", 5*time.Second)
	v.SetDefault("WRITE_TIMEOUT", 10*time.Second)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:         strings.TrimSpace(v.GetString("PORT")),
		DBDriver:     strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DBPath:       strings.TrimSpace(v.GetString("DB_PATH")),
		DBDSN:        strings.TrimSpace(v.GetString("DB_DSN")),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       v.GetDuration("JWT_TTL"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		AppName:      v.GetString("APP_NAME"),
		CORSOrigin:   strings.TrimSpace(v.GetString("CORS_ORIGIN")),
		ReadTimeout:  v.GetDuration("READ_TIMEOUT"),
		WriteTimeout: v.GetDuration("WRITE_TIMEOUT"),
	}

	// Si hay DB_DSN y no se eligió driver => postgres.
	if cfg.DBDriver == "" {
		if cfg.DBDSN != "" {
			cfg.DBDriver = DriverPostgres
		} else {
			cfg.DBDriver = DriverSQLite
		}
	}

	switch cfg.DBDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return Config{}, errors.New("DB_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return Config{}, ErrMissingJWTSecret
	}
	if cfg.JWTTTL <= 0 {
		cfg.JWTTTL = time.Hour
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// Addr devuelve ":PORT" para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}
