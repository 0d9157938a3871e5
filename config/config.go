package config

import (
	"fmt"
	"os"
)

// BackendKind selects the storage engine. It is read once at process start;
// there is no hot swap.
type BackendKind string

const (
	// BackendSQLite is the embedded single-file engine.
	BackendSQLite BackendKind = "sqlite"
	// BackendPostgres is the client/server engine.
	BackendPostgres BackendKind = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Storage configuration
	StorageBackend BackendKind
	// DatabaseURL is the PostgreSQL connection string; required when the
	// postgres backend is active.
	DatabaseURL string
	// SQLitePath is the database file used by the sqlite backend.
	SQLitePath string

	// JWTSecret signs the service tokens the dialog collaborator presents.
	JWTSecret string

	// RedisURL enables the write-path rate limiter when set.
	RedisURL string
}

// LoadConfig creates a Config from environment variables. Unset optional
// values fall back to development defaults; the result is validated before
// being returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		StorageBackend: BackendKind(os.Getenv("STORAGE_BACKEND")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getEnv("SQLITE_PATH", "kalobot.db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RedisURL:       os.Getenv("REDIS_URL"),
	}

	// When the backend is not named explicitly, the presence of a
	// DATABASE_URL selects postgres.
	if cfg.StorageBackend == "" {
		if cfg.DatabaseURL != "" {
			cfg.StorageBackend = BackendPostgres
		} else {
			cfg.StorageBackend = BackendSQLite
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
