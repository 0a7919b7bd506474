// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"strongtype/internal/errors"
	"strongtype/internal/logging"
)

// Config is the library configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Tolerance is the default policy for approximate quantity comparison
	Tolerance ToleranceConfig `json:"tolerance" yaml:"tolerance"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`
}

// ToleranceConfig bounds the error accepted when two floating point quantities
// are compared after a ratio or formula round trip. Two values are near when
// either bound holds.
type ToleranceConfig struct {
	// Absolute is the largest accepted absolute difference
	Absolute float64 `json:"absolute" yaml:"absolute"`

	// Relative is the largest accepted difference relative to the larger magnitude
	Relative float64 `json:"relative" yaml:"relative"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Tolerance: ToleranceConfig{
			Absolute: 1e-9,
			Relative: 1e-9,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks the configuration for values that cannot be honored
func (c *Config) Validate() error {
	if c.Tolerance.Absolute < 0 || c.Tolerance.Relative < 0 {
		return errors.Newf(errors.TypeConfig, "tolerance must be non-negative, got absolute=%g relative=%g",
			c.Tolerance.Absolute, c.Tolerance.Relative)
	}
	return nil
}

// Load loads configuration from a JSON or YAML file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read "+path, err)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Config("decode "+path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Save saves configuration to a file, encoded by its extension
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create "+dir, err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return errors.Config("encode config", err)
	}

	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration and re-initializes logging from it
func Set(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := logging.Initialize(config.Logging); err != nil {
		return errors.Config("initialize logging", err)
	}
	globalConfig = config
	logging.Info("configuration applied",
		zap.Float64("tolerance_absolute", config.Tolerance.Absolute),
		zap.Float64("tolerance_relative", config.Tolerance.Relative),
	)
	return nil
}
