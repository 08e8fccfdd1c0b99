// Package config provides configuration management for the normalizer.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding an optional config
// file path. The command line itself exposes no flags.
const EnvConfigPath = "NORMALIZER_CONFIG"

// Configuration validation errors.
var (
	ErrInvalidLogLevel   = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidSampleRows = errors.New("logging.sample_rows must be non-negative")
)

// Config represents the complete normalizer configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Features FeaturesConfig `yaml:"features"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	SampleRows int    `yaml:"sample_rows"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	NormalizationPreview bool `yaml:"normalization_preview"`
}

// Default returns the configuration used when no config file is present.
// The log level defaults to warn so ambient logging stays out of the
// diagnostic channel on normal runs.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "warn",
			SampleRows: 5,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FromEnv loads the config file named by NORMALIZER_CONFIG, or returns the
// defaults when the variable is unset.
func FromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	if c.Logging.SampleRows < 0 {
		return ErrInvalidSampleRows
	}

	return nil
}
