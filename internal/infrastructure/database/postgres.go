package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aniruddha1321/WellNest/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError is enabled so a
// unique-index violation surfaces as gorm.ErrDuplicatedKey, which is the
// authoritative guard behind the advisory existence pre-checks at signup.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for the account table, including
// its unique indexes on email and username.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBAccount{}); err != nil {
		return fmt.Errorf("failed to migrate accounts table: %w", err)
	}
	return nil
}
