package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for an orrery session.
// Values are populated from .orrery.yaml, ORRERY_* env vars, and CLI flags.
type Config struct {
	Catalog   string `mapstructure:"catalog"`
	FactWidth int    `mapstructure:"fact_width"`
	Verbose   bool   `mapstructure:"verbose"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Color     bool   `mapstructure:"color"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog", "")
	viper.SetDefault("fact_width", 40)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("color", true)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the session cannot work with.
func (c Config) Validate() error {
	if c.FactWidth < 1 {
		return fmt.Errorf("fact_width must be at least 1, got %d", c.FactWidth)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}
