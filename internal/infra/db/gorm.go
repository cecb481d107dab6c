package db

import (
	"fmt"
	"os"

	"bengkel/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect membuka koneksi postgres dan mengembalikan *gorm.DB.
func Connect(cfg config.Config) (*gorm.DB, error) {
	// DATABASE_URL menang kalau ada
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
