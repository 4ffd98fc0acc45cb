package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SooLee99/safe-guide-backend/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError lets the
// repositories see gorm.ErrDuplicatedKey on unique-constraint
// violations instead of driver-specific errors.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}

	if err := db.AutoMigrate(&repositories.DBAlarm{}); err != nil {
		return fmt.Errorf("failed to migrate alarms table: %w", err)
	}

	return nil
}
