// Package database owns the process-wide storage connection: selecting the
// configured backend, opening one shared *gorm.DB, and keeping the schema in
// shape. Everything above this package is backend-agnostic.
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kalobot/backend/config"
)

// Open constructs the shared database handle for the configured backend.
// It is called once at startup; the returned handle is passed down to every
// store and lives for the process lifetime.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.BackendPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening %s database: %w", cfg.StorageBackend, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}

	if cfg.StorageBackend == config.BackendSQLite {
		// A single connection serializes writers on the embedded engine,
		// so the upsert's insert-vs-update decision stays mutually
		// exclusive per key without SQLITE_BUSY churn.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Printf("Connected to %s backend", cfg.StorageBackend)
	return db, nil
}
