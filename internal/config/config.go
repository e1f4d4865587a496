// Package config loads warmup command settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats for batch reports.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Log formats.
const (
	LogText = "text"
	LogJSON = "json"
)

// Config holds the command's settings. Flags override these values.
type Config struct {
	LogLevel  string `env:"WARMUP_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"WARMUP_LOG_FORMAT" envDefault:"text"`
	Output    string `env:"WARMUP_OUTPUT"     envDefault:"yaml"`
	Locale    string `env:"WARMUP_LOCALE"`
}

// Load parses Config from environment variables. It does not validate, so
// flag overrides can replace a bad value first; call Validate once they are
// merged.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects unknown output and log formats.
func (c Config) Validate() error {
	switch c.Output {
	case OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("output format %q: want %s or %s", c.Output, OutputYAML, OutputJSON)
	}
	switch c.LogFormat {
	case LogText, LogJSON:
	default:
		return fmt.Errorf("log format %q: want %s or %s", c.LogFormat, LogText, LogJSON)
	}
	return nil
}
