// Package config loads the rabbit configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sgl-umons/rabbit/internal/model"
	"github.com/sgl-umons/rabbit/internal/pipeline"
)

// Config represents the application configuration.
type Config struct {
	// DefaultFormat is the output format when --output is not given
	// (csv, json, table).
	DefaultFormat string `yaml:"default_format,omitempty"`

	// ModelPath points to an alternative forest model file. Empty means
	// the bundled model.
	ModelPath string `yaml:"model_path,omitempty"`

	// LabelMapping overrides how raw predictor labels map onto the
	// closed {Bot, Human, Unknown, Invalid} set. Required when using a
	// model with a different label vocabulary.
	LabelMapping map[string]string `yaml:"label_mapping,omitempty"`

	// ExcludedEvents lists raw GitHub event types to drop before
	// classification (e.g. WatchEvent for users known to mass-star).
	ExcludedEvents []string `yaml:"excluded_events,omitempty"`
}

// Excluded reports whether the given raw event type is configured out.
func (c *Config) Excluded(eventType string) bool {
	for _, t := range c.ExcludedEvents {
		if t == eventType {
			return true
		}
	}
	return false
}

// ConfigDir returns the directory holding the global config file.
func ConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "rabbit")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the global config file, falling back to defaults when it
// does not exist.
func Load() (*Config, error) {
	cfg := &Config{
		DefaultFormat: "csv",
	}

	path := ConfigPath()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "csv"
	}
	return cfg, nil
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{DefaultFormat: "csv"}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = "csv"
	}
	return cfg, nil
}

// Labels resolves the effective raw-label mapping: the defaults for the
// bundled model overlaid with any configured overrides. Entries pointing
// outside the closed user-type set are rejected.
func (c *Config) Labels() (pipeline.LabelMapping, error) {
	mapping := pipeline.DefaultLabelMapping()
	for raw, target := range c.LabelMapping {
		t := model.UserType(target)
		if !t.Valid() {
			return nil, fmt.Errorf("label_mapping: %q maps to unknown user type %q", raw, target)
		}
		mapping[raw] = t
	}
	return mapping, nil
}

// Save writes the config to the global config file, creating the
// directory if needed.
func (c *Config) Save() error {
	dir := ConfigDir()
	if dir == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
