package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Warnings())
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		message string
	}{
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Theme = "solarized" },
			field:   "theme",
			message: "unknown theme",
		},
		{
			name:    "negative char limit",
			mutate:  func(c *Config) { c.CharLimit = -1 },
			field:   "char_limit",
			message: "must be >= 0",
		},
		{
			name:    "negative toast ttl",
			mutate:  func(c *Config) { c.ToastTTL = -time.Second },
			field:   "toast_ttl",
			message: "must be >= 0",
		},
		{
			name:    "empty key list",
			mutate:  func(c *Config) { c.Keys.Help = nil },
			field:   "keys.help",
			message: "at least one key",
		},
		{
			name:    "duplicate key",
			mutate:  func(c *Config) { c.Keys.Delete = []string{"x"} },
			field:   "keys.delete",
			message: `"x" is already bound to toggle`,
		},
		{
			name:    "reserved key",
			mutate:  func(c *Config) { c.Keys.Quit = []string{"esc"} },
			field:   "keys.quit",
			message: "reserved",
		},
		{
			name:    "blank key",
			mutate:  func(c *Config) { c.Keys.Focus = []string{" "} },
			field:   "keys.focus",
			message: "blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, cfg.Validate(), &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.field, fieldErrs[0].Field)
			assert.Contains(t, fieldErrs[0].Err.Error(), tt.message)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "nope"
	cfg.CharLimit = -5

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.Validate(), &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestValidate_SameKeyTwiceInOneAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys.Toggle = []string{"x", "x"}
	assert.NoError(t, cfg.Validate())
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	dir := t.TempDir()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, cfg.ValidateDeep(dir), &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_MissingOrRegularFile(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.ValidateDeep(""))
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: gruvbox\n"), 0o644))
	assert.NoError(t, cfg.ValidateDeep(path))
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ToastTTL = 0
	cfg.ConfirmClear = false

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "toast_ttl", warnings[0].Category)
	assert.Equal(t, "confirm_clear", warnings[1].Category)
}
