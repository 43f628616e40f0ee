package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Logging struct {
	File         string `env:"LOG_FILE" envDefault:"minesweeper.log"`
	TerminalFile string `env:"TERMINAL_LOG_FILE" envDefault:"minesweeper-terminal.log"`
	MaxSize      int    `env:"LOG_MAX_SIZE" envDefault:"10"` // megabytes
	MaxBackups   int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAge       int    `env:"LOG_MAX_AGE" envDefault:"28"` // days
}

func NewLogging() (*Logging, error) {
	var cfg Logging
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse logging env: %w", err)
	}
	return &cfg, nil
}
