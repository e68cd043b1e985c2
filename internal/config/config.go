// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/Epherum/translation-app/internal/errors"
	"github.com/Epherum/translation-app/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// DefaultProvider is the provider used when none is given on the CLI
	DefaultProvider string `json:"default_provider"`

	// CatalogPath points to an external HCL pricing catalog.
	// Empty means the built-in catalog is used.
	CatalogPath string `json:"catalog_path,omitempty"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the per-service usage breakdown table
	ShowDetails bool `json:"show_details"`
}

// envOverrides are environment variable overrides applied on top of the
// file-based configuration.
type envOverrides struct {
	LogLevel        string `env:"TRANSCOST_LOG_LEVEL"`
	DefaultProvider string `env:"TRANSCOST_PROVIDER"`
	CatalogPath     string `env:"TRANSCOST_CATALOG"`
	Format          string `env:"TRANSCOST_FORMAT"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version:         "1.0",
		DefaultProvider: "google",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".transcost.json")
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Config("failed to parse config file", err).
				WithContext("path", path)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Config("failed to read config file", err).
			WithContext("path", path)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return errors.Config("failed to parse environment overrides", err)
	}

	if overrides.LogLevel != "" {
		c.Logging.Level = overrides.LogLevel
	}
	if overrides.DefaultProvider != "" {
		c.DefaultProvider = overrides.DefaultProvider
	}
	if overrides.CatalogPath != "" {
		c.CatalogPath = overrides.CatalogPath
	}
	if overrides.Format != "" {
		c.Output.DefaultFormat = overrides.Format
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
