package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Metadata.Prefix != "signum:" {
		t.Errorf("expected default prefix signum:, got %s", cfg.Metadata.Prefix)
	}
	if cfg.Render.Placeholder != "[data-signum-placeholder]" {
		t.Errorf("expected default placeholder selector, got %s", cfg.Render.Placeholder)
	}
	if cfg.Render.BaseClass != "signum-label" {
		t.Errorf("expected base class signum-label, got %s", cfg.Render.BaseClass)
	}
	if cfg.Watch.DebounceDelay != 500*time.Millisecond {
		t.Errorf("expected debounce 500ms, got %v", cfg.Watch.DebounceDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing prefix",
			modify:  func(c *Config) { c.Metadata.Prefix = "" },
			wantErr: true,
		},
		{
			name:    "invalid selector",
			modify:  func(c *Config) { c.Render.Placeholder = "[[" },
			wantErr: true,
		},
		{
			name:    "void element",
			modify:  func(c *Config) { c.Render.Element = "img" },
			wantErr: true,
		},
		{
			name:    "negative debounce",
			modify:  func(c *Config) { c.Watch.DebounceDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "uppercase log level",
			modify:  func(c *Config) { c.Log.Level = "DEBUG" },
			wantErr: false,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
metadata:
  prefix: "prov:"
render:
  placeholder: ".provenance"
  element: "i"
watch:
  debounce_delay: 2s
  extensions:
    - .xhtml
log:
  level: debug
  format: json
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Metadata.Prefix != "prov:" {
		t.Errorf("expected prefix prov:, got %s", cfg.Metadata.Prefix)
	}
	if cfg.Render.Placeholder != ".provenance" {
		t.Errorf("expected placeholder .provenance, got %s", cfg.Render.Placeholder)
	}
	if cfg.Render.Element != "i" {
		t.Errorf("expected element i, got %s", cfg.Render.Element)
	}
	if cfg.Render.BaseClass != "" {
		t.Errorf("expected unset base class, got %s", cfg.Render.BaseClass)
	}
	if cfg.Watch.DebounceDelay != 2*time.Second {
		t.Errorf("expected debounce 2s, got %v", cfg.Watch.DebounceDelay)
	}
	if len(cfg.Watch.Extensions) != 1 || cfg.Watch.Extensions[0] != ".xhtml" {
		t.Errorf("expected extensions [.xhtml], got %v", cfg.Watch.Extensions)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Log.Format)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("render: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(configPath); err == nil {
		t.Error("expected parse error")
	}
	if _, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	override := &Config{
		Metadata: MetadataConfig{Prefix: "prov:"},
		Log:      LogConfig{Level: "debug"},
	}
	override.Render.Element = "b"

	base.Merge(override)

	if base.Metadata.Prefix != "prov:" {
		t.Errorf("expected prefix prov:, got %s", base.Metadata.Prefix)
	}
	if base.Render.Element != "b" {
		t.Errorf("expected element b, got %s", base.Render.Element)
	}
	// Base class should remain from base since override didn't set it
	if base.Render.BaseClass != "signum-label" {
		t.Errorf("expected base class to remain default, got %s", base.Render.BaseClass)
	}
	if base.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", base.Log.Level)
	}
	if base.Log.Format != "text" {
		t.Errorf("expected log format to remain text, got %s", base.Log.Format)
	}

	base.Merge(nil)
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Render.ClassPrefix = "saved"

	if err := cfg.SaveToFile(configPath); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}

	loaded, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Render.ClassPrefix != "saved" {
		t.Errorf("expected class prefix saved, got %s", loaded.Render.ClassPrefix)
	}
	if loaded.Watch.DebounceDelay != 500*time.Millisecond {
		t.Errorf("expected debounce to round-trip, got %v", loaded.Watch.DebounceDelay)
	}
}
