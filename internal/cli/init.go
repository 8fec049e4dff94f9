// Package cli provides common CLI initialization utilities shared by
// cmd/timelog and cmd/timelog-quick.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"timelog/internal/config"
	"timelog/internal/log"
	"timelog/internal/store"
)

// SetupLogger initializes structured logging with default settings and sets
// it as the process default.
func SetupLogger(component string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Component = component
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the configured snapshot backend.
// Exits the process when the backend cannot be opened.
func InitStore(logger *log.Logger, cfg *config.Config) store.KV {
	switch cfg.StoreBackend {
	case "sqlite":
		kv, err := store.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite store",
				log.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		return kv
	default:
		return store.NewMemory()
	}
}
