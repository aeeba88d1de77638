// Package config loads console settings from an optional YAML file and
// FOUNDRY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigFile = "FOUNDRY_CONFIG"
	EnvStatus     = "FOUNDRY_STATUS"
	EnvLogFile    = "FOUNDRY_LOG_FILE"
	EnvLogLevel   = "FOUNDRY_LOG_LEVEL"
)

const (
	DefaultStatus   = "🚀 Welcome to Azure AI Foundry Code!"
	DefaultLogLevel = "info"
)

// ErrInvalidLogLevel is returned by Validate for an unrecognised level.
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds presentation and logging settings for the console.
type Config struct {
	// Status is the welcome message shown in the status region.
	Status string `yaml:"status"`
	// Banner lines seed the output history.
	Banner []string `yaml:"banner"`
	// LogFile receives structured logs. Logging is off when empty.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Status:   DefaultStatus,
		Banner:   []string{"System initialized...", "Ready for commands."},
		LogLevel: DefaultLogLevel,
	}
}

// Load builds the configuration from defaults, the file named by
// FOUNDRY_CONFIG and environment overrides, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		var err error
		cfg, err = LoadFile(path, cfg)
		if err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvStatus); v != "" {
		cfg.Status = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the YAML file at path over base. Keys absent from the
// file keep their value from base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the log level is one zap understands.
func (c Config) Validate() error {
	if c.LogLevel == "" {
		return nil
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}
