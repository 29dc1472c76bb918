// Package config provides configuration loading and management for Signum.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/signum/processor/renderer"
	"github.com/c360studio/signum/processor/watcher"
	vocab "github.com/c360studio/signum/vocabulary/signum"
)

// Config represents the complete Signum configuration
type Config struct {
	Metadata MetadataConfig   `yaml:"metadata"`
	Render   renderer.Options `yaml:"render"`
	Watch    WatchConfig      `yaml:"watch"`
	Log      LogConfig        `yaml:"log"`
}

// MetadataConfig configures how metadata is read
type MetadataConfig struct {
	// Prefix is prepended to field names to form meta tag names (default: "signum:")
	Prefix string `yaml:"prefix"`
}

// WatchConfig configures the directory watcher used by "signum watch"
type WatchConfig = watcher.Config

// LogConfig configures operator logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
	// Format is text or json
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Metadata: MetadataConfig{
			Prefix: vocab.MetaPrefix,
		},
		Render: renderer.DefaultOptions(),
		Watch:  watcher.DefaultConfig(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Metadata.Prefix == "" {
		return fmt.Errorf("metadata.prefix is required")
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if c.Watch.DebounceDelay < 0 {
		return fmt.Errorf("watch.debounce_delay must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. Environment variables in
// ${VAR} and ${VAR:-default} form are expanded before parsing. Fields absent
// from the file are left zero so the result can be merged over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal([]byte(ExpandEnvWithDefaults(string(data))), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Metadata
	if other.Metadata.Prefix != "" {
		c.Metadata.Prefix = other.Metadata.Prefix
	}

	// Render
	if other.Render.Placeholder != "" {
		c.Render.Placeholder = other.Render.Placeholder
	}
	if other.Render.BaseClass != "" {
		c.Render.BaseClass = other.Render.BaseClass
	}
	if other.Render.ClassPrefix != "" {
		c.Render.ClassPrefix = other.Render.ClassPrefix
	}
	if other.Render.Element != "" {
		c.Render.Element = other.Render.Element
	}

	// Watch
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}
	if len(other.Watch.Extensions) > 0 {
		c.Watch.Extensions = other.Watch.Extensions
	}
	if len(other.Watch.ExcludeDirs) > 0 {
		c.Watch.ExcludeDirs = other.Watch.ExcludeDirs
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}
