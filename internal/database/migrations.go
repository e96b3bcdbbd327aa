package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/devtrack-api/internal/models"
	"gorm.io/gorm"
)

// Models lists every entity persisted by the SQL backend.
func Models() []any {
	return []any{
		&models.User{},
		&models.Project{},
		&models.Log{},
		&models.Skill{},
	}
}

// Migrate creates or updates the tables and indexes for all models.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}
