package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aplikasi, semua dari environment.
type Config struct {
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret string

	// Bootstrap super admin: tidak ada kredensial hardcoded,
	// endpoint setup dijaga token dan kredensialnya dari env.
	SetupToken         string
	SetupAdminEmail    string
	SetupAdminPassword string
}

func Load() (Config, error) {
	pgPort, err := mustAtoi("POSTGRES_PORT")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SetupToken:         os.Getenv("SETUP_TOKEN"),
		SetupAdminEmail:    os.Getenv("SETUP_ADMIN_EMAIL"),
		SetupAdminPassword: os.Getenv("SETUP_ADMIN_PASSWORD"),
	}

	// cek wajib
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.PostgresUser == "" {
		return Config{}, fmt.Errorf("POSTGRES_USER is required")
	}
	if cfg.PostgresPassword == "" {
		return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if cfg.PostgresDB == "" {
		return Config{}, fmt.Errorf("POSTGRES_DB is required")
	}
	if cfg.PostgresHost == "" {
		return Config{}, fmt.Errorf("POSTGRES_HOST is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.SetupToken == "" {
		return Config{}, fmt.Errorf("SETUP_TOKEN is required")
	}
	if cfg.SetupAdminEmail == "" {
		return Config{}, fmt.Errorf("SETUP_ADMIN_EMAIL is required")
	}
	if cfg.SetupAdminPassword == "" {
		return Config{}, fmt.Errorf("SETUP_ADMIN_PASSWORD is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func mustAtoi(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
