package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// Difficulty and HunterName are asked for interactively when empty.
	Difficulty  string `env:"TREASURE_HUNTER_DIFFICULTY" validate:"omitempty,oneof=e n h s easy normal hard test samurai"`
	HunterName  string `env:"TREASURE_HUNTER_NAME" validate:"omitempty,max=32"`
	Seed        uint64 `env:"TREASURE_HUNTER_SEED"`
	LogLevel    string `env:"TREASURE_HUNTER_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFile     string `env:"TREASURE_HUNTER_LOG_FILE"`
	Environment string `env:"TREASURE_HUNTER_ENV" envDefault:"development" validate:"oneof=development production"`
}

// LoadConfig loads the configuration from a .env file, if present, and the
// environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Difficulty = strings.ToLower(cfg.Difficulty)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
