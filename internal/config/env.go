package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvLogLevel = "GROUNDPLANE_LOG_LEVEL"
	EnvLogFile  = "GROUNDPLANE_LOG_FILE"
)

// loadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// applyEnv applies environment overrides to the config.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Logging.LogFile = v
	}
}
