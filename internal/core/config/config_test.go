package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.True(t, cfg.ConfirmClear)
	assert.Equal(t, 256, cfg.CharLimit)
	assert.Equal(t, 3*time.Second, cfg.ToastTTL)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
theme: gruvbox
confirm_clear: false
toast_ttl: 500ms
labels:
  title: "Groceries"
keys:
  toggle: ["t"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.False(t, cfg.ConfirmClear)
	assert.Equal(t, 500*time.Millisecond, cfg.ToastTTL)
	assert.Equal(t, 256, cfg.CharLimit)

	assert.Equal(t, "Groceries", cfg.Labels.Title)
	assert.Equal(t, "Add a new task...", cfg.Labels.Placeholder)

	assert.Equal(t, []string{"t"}, cfg.Keys.Toggle)
	assert.Equal(t, []string{"d", "delete"}, cfg.Keys.Delete)
}

func TestLoad_BlankValuesFallBack(t *testing.T) {
	path := writeConfig(t, `
theme: ""
labels:
  empty: ""
keys:
  quit: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, "No tasks", cfg.Labels.Empty)
	assert.Equal(t, []string{"q"}, cfg.Keys.Quit)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "theme: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "theme: solarized\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "solarized")
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeConfig(t, "theme: solarized\nchar_limit: -1\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "solarized", cfg.Theme)
	assert.Error(t, cfg.Validate())
}

func TestConfig_Palette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "onedark"
	assert.Equal(t, "#61afef", string(cfg.Palette().Primary))

	cfg.Theme = "missing"
	assert.Equal(t, "#7aa2f7", string(cfg.Palette().Primary))
}

func TestConfig_WriteRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "kanagawa"
	cfg.ToastTTL = 5 * time.Second
	cfg.Labels.Title = "Chores"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "toast_ttl: 5s")
	assert.Contains(t, string(data), "confirm_clear: true")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestKeys_BindingsOrder(t *testing.T) {
	var actions []string
	for _, b := range DefaultConfig().Keys.Bindings() {
		actions = append(actions, b.Action)
	}

	assert.Equal(t, []string{
		ActionToggle, ActionDelete, ActionClear, ActionUp,
		ActionDown, ActionFocus, ActionHelp, ActionQuit,
	}, actions)
}
