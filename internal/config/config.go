// Package config loads tabnewsctl settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds CLI configuration. Variables are read with the TABNEWS_
// prefix, e.g. TABNEWS_BASE_URL; flags override them.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://www.tabnews.com.br/api/v1"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
	UserAgent string        `envconfig:"USER_AGENT" default:"tabnewsctl"`
	Output    string        `envconfig:"OUTPUT" default:"json"`

	// LogLevel falls back to the unprefixed LOG_LEVEL.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("tabnews", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values envconfig cannot express.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("TABNEWS_TIMEOUT must be > 0, got %s", c.Timeout)
	}
	switch c.Output {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (want json or yaml)", c.Output)
	}
	return nil
}

// Level parses LogLevel, defaulting to info when empty or unknown.
func (c *Config) Level() zerolog.Level {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
