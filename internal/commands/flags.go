package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/tasklist/internal/core/config"
)

const appName = "tasklist"

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is read in the Before hook. It is nil when the file could not
	// be parsed; use ReadConfig to surface the error.
	Config *config.Config

	// SessionID identifies this process in logs
	SessionID string
}

// ReadConfig returns the config read by the Before hook, or reads ConfigPath
// again so the parse error reaches the caller.
func (f *Flags) ReadConfig() (*config.Config, error) {
	if f.Config != nil {
		return f.Config, nil
	}
	return config.Read(f.ConfigPath)
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tasklist/tasklist.log
// On Linux: $XDG_STATE_HOME/tasklist/tasklist.log (defaults to ~/.local/state/tasklist/tasklist.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, appName, appName+".log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", appName, appName+".log")
	}

	return filepath.Join(home, ".local", "state", appName, appName+".log")
}
