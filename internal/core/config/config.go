// Package config loads and validates the tasklist YAML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasklist/internal/core/styles"
)

// Key actions available in the task list.
const (
	ActionToggle = "toggle"
	ActionDelete = "delete"
	ActionClear  = "clear"
	ActionUp     = "up"
	ActionDown   = "down"
	ActionFocus  = "focus"
	ActionHelp   = "help"
	ActionQuit   = "quit"
)

// Config holds the application configuration.
type Config struct {
	Theme        string        `yaml:"theme"`
	ConfirmClear bool          `yaml:"confirm_clear"`
	CharLimit    int           `yaml:"char_limit"`
	ToastTTL     time.Duration `yaml:"toast_ttl"`
	Labels       Labels        `yaml:"labels"`
	Keys         Keys          `yaml:"keys"`
}

// Labels holds the static text rendered by the TUI.
type Labels struct {
	Title       string `yaml:"title"`
	Placeholder string `yaml:"placeholder"`
	Add         string `yaml:"add"`
	Done        string `yaml:"done"`
	Complete    string `yaml:"complete"`
	Empty       string `yaml:"empty"`
	EmptyHint   string `yaml:"empty_hint"`
	Delete      string `yaml:"delete"`
	ClearAll    string `yaml:"clear_all"`
}

// Keys maps each list action to the keys that trigger it. Key names follow
// bubbletea's key strings, except "space" which stands for the space bar.
type Keys struct {
	Toggle []string `yaml:"toggle"`
	Delete []string `yaml:"delete"`
	Clear  []string `yaml:"clear"`
	Up     []string `yaml:"up"`
	Down   []string `yaml:"down"`
	Focus  []string `yaml:"focus"`
	Help   []string `yaml:"help"`
	Quit   []string `yaml:"quit"`
}

// Binding pairs an action with its keys.
type Binding struct {
	Action string
	Keys   []string
}

// Bindings returns every action with its keys in a stable order.
func (k Keys) Bindings() []Binding {
	return []Binding{
		{Action: ActionToggle, Keys: k.Toggle},
		{Action: ActionDelete, Keys: k.Delete},
		{Action: ActionClear, Keys: k.Clear},
		{Action: ActionUp, Keys: k.Up},
		{Action: ActionDown, Keys: k.Down},
		{Action: ActionFocus, Keys: k.Focus},
		{Action: ActionHelp, Keys: k.Help},
		{Action: ActionQuit, Keys: k.Quit},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:        styles.DefaultTheme,
		ConfirmClear: true,
		CharLimit:    256,
		ToastTTL:     3 * time.Second,
		Labels: Labels{
			Title:       "To Do",
			Placeholder: "Add a new task...",
			Add:         "add",
			Done:        "Done",
			Complete:    "complete",
			Empty:       "No tasks",
			EmptyHint:   "Add a new task!",
			Delete:      "delete",
			ClearAll:    "clear all",
		},
		Keys: Keys{
			Toggle: []string{"space", "x"},
			Delete: []string{"d", "delete"},
			Clear:  []string{"C"},
			Up:     []string{"up", "k"},
			Down:   []string{"down", "j"},
			Focus:  []string{"i", "a"},
			Help:   []string{"?"},
			Quit:   []string{"q"},
		},
	}
}

// Load reads configuration from configPath and validates it.
func Load(configPath string) (*Config, error) {
	cfg, err := Read(configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Read parses configPath without validating it. A missing file yields the
// defaults; values absent from the file keep their defaults.
func Read(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for empty labels, key lists and theme.
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if c.Theme == "" {
		c.Theme = d.Theme
	}

	defaultString(&c.Labels.Title, d.Labels.Title)
	defaultString(&c.Labels.Placeholder, d.Labels.Placeholder)
	defaultString(&c.Labels.Add, d.Labels.Add)
	defaultString(&c.Labels.Done, d.Labels.Done)
	defaultString(&c.Labels.Complete, d.Labels.Complete)
	defaultString(&c.Labels.Empty, d.Labels.Empty)
	defaultString(&c.Labels.EmptyHint, d.Labels.EmptyHint)
	defaultString(&c.Labels.Delete, d.Labels.Delete)
	defaultString(&c.Labels.ClearAll, d.Labels.ClearAll)

	defaultKeys(&c.Keys.Toggle, d.Keys.Toggle)
	defaultKeys(&c.Keys.Delete, d.Keys.Delete)
	defaultKeys(&c.Keys.Clear, d.Keys.Clear)
	defaultKeys(&c.Keys.Up, d.Keys.Up)
	defaultKeys(&c.Keys.Down, d.Keys.Down)
	defaultKeys(&c.Keys.Focus, d.Keys.Focus)
	defaultKeys(&c.Keys.Help, d.Keys.Help)
	defaultKeys(&c.Keys.Quit, d.Keys.Quit)
}

func defaultString(v *string, d string) {
	if *v == "" {
		*v = d
	}
}

func defaultKeys(v *[]string, d []string) {
	if len(*v) == 0 {
		*v = d
	}
}

// Palette returns the palette of the configured theme, falling back to the
// default theme for unknown names.
func (c *Config) Palette() styles.Palette {
	if p, ok := styles.GetPalette(c.Theme); ok {
		return p
	}
	p, _ := styles.GetPalette(styles.DefaultTheme)
	return p
}

// Marshal encodes the configuration as YAML with two-space indentation.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// Write marshals the configuration to path, creating parent directories.
func (c *Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}
