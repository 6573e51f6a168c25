package database

import (
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"artgrid/internal/config"
	"artgrid/internal/http-api/models"
	"artgrid/internal/middleware/auth"
)

// ConnectDB opens the SQLite database file with write-ahead logging and
// foreign-key enforcement enabled, then brings the schema up to date.
func ConnectDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", cfg.DatabaseURL)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("connected to the database", "path", cfg.DatabaseURL)
	return db, nil
}

// Migrate synchronizes the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Like{},
		&models.Comment{},
		&models.Moderation{},
	)
}

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
// Runs once per process start.
func SeedAdmin(db *gorm.DB, cfg *config.Config, log *slog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		FullName:           "ARTGRID Admin",
		Email:              cfg.AdminEmail,
		Password:           hashed,
		DOBHash:            auth.HashDOB("1990-01-01"),
		StudentID:          "ADMIN001",
		YearOfStudy:        "Graduate",
		Role:               models.RoleAdmin,
		VerificationStatus: models.VerificationVerified,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Info("seeded admin account", "email", cfg.AdminEmail)
	return nil
}
