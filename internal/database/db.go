package database

import (
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SaiVignesh27/unified-platform/internal/models"
)

// Connect opens the Postgres connection and migrates the marketplace schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	slog.Info("database connection established")

	if err := db.AutoMigrate(
		&models.Freelancer{},
		&models.Recruiter{},
		&models.Job{},
		&models.Application{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
