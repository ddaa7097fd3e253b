package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklist/internal/core/config"
)

func TestDefaultConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "tasklist", "config.yaml"), DefaultConfigPath())
}

func TestDefaultLogFile_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "tasklist", "tasklist.log"), DefaultLogFile())
}

func TestFlags_ReadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	f := &Flags{Config: &cfg}

	got, err := f.ReadConfig()
	require.NoError(t, err)
	assert.Same(t, &cfg, got)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	_, err = (&Flags{ConfigPath: path}).ReadConfig()
	assert.Error(t, err)
}
