package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable for the
// current environment.
func ValidateConfig(cfg *Config) error {
	switch cfg.StorageBackend {
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			return ValidationError{Field: "SQLITE_PATH", Message: "required for the sqlite backend"}
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return ValidationError{Field: "DATABASE_URL", Message: "required for the postgres backend"}
		}
	default:
		return ValidationError{
			Field:   "STORAGE_BACKEND",
			Message: fmt.Sprintf("unknown backend %q (want %q or %q)", cfg.StorageBackend, BackendSQLite, BackendPostgres),
		}
	}

	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}

	// Tokens cannot be verified without a secret; only development and test
	// may run without one.
	if cfg.JWTSecret == "" && IsProduction() {
		return ValidationError{Field: "JWT_SECRET", Message: "required in production"}
	}

	return nil
}
