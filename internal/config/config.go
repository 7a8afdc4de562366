// Package config resolves process-level configuration from the environment.
// Persistent user settings live in the database; this covers only what must
// be known before the store is opened.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/mtrost/ritual/internal/constants"
)

type Config struct {
	DBPath string
	Debug  bool
}

// Load reads an optional .env file from the working directory, then the
// RITUAL_DB and RITUAL_DEBUG environment variables. Missing values fall
// back to defaults.
func Load() Config {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{DBPath: constants.DefaultConfigPath}
	if v := os.Getenv("RITUAL_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RITUAL_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}
	return cfg
}
