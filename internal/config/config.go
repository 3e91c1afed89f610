// Package config loads runtime settings from a .env file and the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Command-line flags override it.
type Config struct {
	// DBPath is the SQLite file. Empty means the XDG default.
	DBPath string `env:"MATHDRILL_DB"`

	// LogPath is the log file. Empty disables logging.
	LogPath string `env:"MATHDRILL_LOG"`

	LogLevel string `env:"MATHDRILL_LOG_LEVEL" envDefault:"info"`

	// Seed makes problem generation deterministic. Zero uses OS entropy.
	Seed uint64 `env:"MATHDRILL_SEED"`
}

// Load reads a .env file from the working directory if present, then
// parses the environment.
func Load() (Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
