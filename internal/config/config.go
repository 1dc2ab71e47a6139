package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Save backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	WorldFile string `env:"WORLD_FILE" envDefault:"worlds/story_of_a_man.yaml"`

	SaveBackend   string `env:"SAVE_BACKEND" envDefault:"file"`
	SaveDir       string `env:"SAVE_DIR" envDefault:".saves"`
	RedisURL      string `env:"REDIS_URL" envDefault:"localhost:6379"`
	Autosave      bool   `env:"AUTOSAVE" envDefault:"true"`
	AutosaveEvery int    `env:"AUTOSAVE_EVERY" envDefault:"4"`

	// AudioPlayer is the player binary used for ambient audio. Empty
	// disables audio entirely.
	AudioPlayer string `env:"AUDIO_PLAYER"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	switch cfg.SaveBackend {
	case BackendFile, BackendRedis:
	default:
		return nil, fmt.Errorf("invalid SAVE_BACKEND %q: must be %q or %q", cfg.SaveBackend, BackendFile, BackendRedis)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level string onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
