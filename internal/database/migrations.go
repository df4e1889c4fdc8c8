package database

import (
	"fmt"

	"github.com/yukikurage/user-hobbies-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates the users and hobbies tables when they are missing. It is only
// a bootstrap for empty databases; it never alters existing columns.
func Migrate(db *gorm.DB, dbSchema string, log *zap.Logger) error {
	log.Info("Ensuring database tables exist")

	if dbSchema != "" && db.Dialector.Name() == "postgres" {
		if err := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, dbSchema)).Error; err != nil {
			return fmt.Errorf("failed to create schema %s: %w", dbSchema, err)
		}
	}

	for _, model := range []any{&models.User{}, &models.Hobby{}} {
		if db.Migrator().HasTable(model) {
			continue
		}
		if err := db.Migrator().CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	log.Info("Database tables ready")
	return nil
}
