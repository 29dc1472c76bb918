package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpandEnvWithDefaults verifies that environment variable expansion
// properly handles ${VAR:-default} syntax.
func TestExpandEnvWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		env      map[string]string
		expected string
	}{
		{
			name:     "default used when var unset",
			input:    `${SIGNUM_PREFIX:-signum:}`,
			env:      map[string]string{},
			expected: `signum:`,
		},
		{
			name:     "env value used when set",
			input:    `${SIGNUM_PREFIX:-signum:}`,
			env:      map[string]string{"SIGNUM_PREFIX": "prov:"},
			expected: `prov:`,
		},
		{
			name:     "multiple vars with defaults",
			input:    `${SIGNUM_BASE:-signum}-${SIGNUM_SUFFIX:-label}`,
			env:      map[string]string{},
			expected: `signum-label`,
		},
		{
			name:     "partial env set",
			input:    `${SIGNUM_BASE:-signum}-${SIGNUM_SUFFIX:-label}`,
			env:      map[string]string{"SIGNUM_BASE": "prov"},
			expected: `prov-label`,
		},
		{
			name:     "empty default",
			input:    `prefix${OPTIONAL:-}suffix`,
			env:      map[string]string{},
			expected: `prefixsuffix`,
		},
		{
			name:     "simple var without default",
			input:    `${SIMPLE_VAR}`,
			env:      map[string]string{"SIMPLE_VAR": "value"},
			expected: `value`,
		},
		{
			name:     "simple var unset without default",
			input:    `${SIMPLE_VAR}`,
			env:      map[string]string{},
			expected: ``,
		},
		{
			name:     "bare dollar untouched",
			input:    `cost $5`,
			env:      map[string]string{},
			expected: `cost $5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range []string{"SIGNUM_PREFIX", "SIGNUM_BASE", "SIGNUM_SUFFIX", "OPTIONAL", "SIMPLE_VAR"} {
				t.Setenv(v, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			assert.Equal(t, tt.expected, ExpandEnvWithDefaults(tt.input), "expansion mismatch for input: %s", tt.input)
		})
	}
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("SIGNUM_ELEMENT", "b")

	path := filepath.Join(t.TempDir(), "signum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  element: ${SIGNUM_ELEMENT:-span}\n  base_class: ${SIGNUM_UNSET:-badge}\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "b", cfg.Render.Element)
	assert.Equal(t, "badge", cfg.Render.BaseClass)
}
