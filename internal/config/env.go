// SPDX-License-Identifier: MIT

// Package config reads the command-line tool's settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the environment defaults of the montecarlo command. Flags
// given on the command line override them.
type Settings struct {
	LogLevel  string `env:"MONTECARLO_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"MONTECARLO_LOG_FORMAT" envDefault:"text"`
	Format    string `env:"MONTECARLO_FORMAT"     envDefault:"text"`
	Seed      int64  `env:"MONTECARLO_SEED"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns Settings with defaults applied.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
