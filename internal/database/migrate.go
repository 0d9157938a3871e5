package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/kalobot/backend/internal/models"
)

// ErrSchemaInit marks an unrecoverable schema initialization failure. The
// process must not serve store operations after seeing it.
var ErrSchemaInit = errors.New("schema initialization failed")

// Migrate ensures the profile and intake-event tables and their indexes
// exist. It is idempotent: the resulting schema is identical however many
// times it runs, and both dialects end up logically equivalent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.IntakeEvent{},
	); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInit, err)
	}

	log.Printf("Schema ready on %s", db.Dialector.Name())
	return nil
}
