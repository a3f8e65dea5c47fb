package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server settings, loaded from the environment
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Host        string `env:"HOST" envDefault:""`
	Port        int    `env:"PORT" envDefault:"8080"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL" envDefault:""`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from a .env file (if present) and the process
// environment. Environment variables win over file values.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment alone is enough
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
