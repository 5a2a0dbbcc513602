package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported values for DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverGorm     = "gorm"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr           string
	DBDriver       string
	DatabaseURL    string
	SQLitePath     string
	JWTSecret      string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	SeedCategories bool
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Addr:        getEnv("TRIVIA_ADDR", ":8080"),
		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "trivia.db"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	var err error
	if cfg.ReadTimeout, err = parseDuration("READ_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}
	if cfg.WriteTimeout, err = parseDuration("WRITE_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}

	cfg.SeedCategories = true
	if raw := getEnv("SEED_CATEGORIES", ""); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("SEED_CATEGORIES: %w", err)
		}
		cfg.SeedCategories = seed
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverGorm:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required for DB_DRIVER=%s", cfg.DBDriver)
		}
	case DriverSQLite, DriverMemory:
	default:
		return cfg, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
