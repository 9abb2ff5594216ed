package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment.
type Config struct {
	Theme     string `env:"LEAR_THEME" envDefault:"dark"`
	Width     int    `env:"LEAR_WIDTH" envDefault:"80"`
	Seed      uint64 `env:"LEAR_SEED" envDefault:"0"`
	LogLevel  string `env:"LEAR_LOG_LEVEL" envDefault:"off"`
	LogFormat string `env:"LEAR_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LEAR_LOG_FILE"`
	DataDir   string `env:"LEAR_DATA_DIR"` // scene files from lear-munge; empty uses the bundled excerpts
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 {
		return Config{}, fmt.Errorf("LEAR_WIDTH must be positive, got %d", cfg.Width)
	}
	return cfg, nil
}
