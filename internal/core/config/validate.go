package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tasklist/internal/core/styles"
)

// reservedKeys are handled by the TUI before list bindings and cannot be
// rebound.
var reservedKeys = []string{"tab", "esc", "enter", "ctrl+c"}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid. Errors are
// returned as criterio.FieldErrors keyed by the YAML field path.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("char_limit", c.CharLimit, nonNegative),
		criterio.Run("toast_ttl", c.ToastTTL, nonNegativeDuration),
		c.validateKeys(),
	)
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// it exists, is a regular file.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.ToastTTL == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "toast_ttl",
			Message:  "toast_ttl is 0, change notifications are disabled",
		})
	}

	if !c.ConfirmClear {
		warnings = append(warnings, ValidationWarning{
			Category: "confirm_clear",
			Message:  "clear all removes every task without asking",
		})
	}

	return warnings
}

func (c *Config) validateKeys() error {
	var errs criterio.FieldErrorsBuilder
	owner := make(map[string]string)

	for _, b := range c.Keys.Bindings() {
		field := "keys." + b.Action
		if len(b.Keys) == 0 {
			errs = errs.Append(field, errors.New("at least one key is required"))
			continue
		}

		for _, k := range b.Keys {
			switch {
			case strings.TrimSpace(k) == "":
				errs = errs.Append(field, errors.New("key cannot be blank"))
			case isReserved(k):
				errs = errs.Append(field, fmt.Errorf("key %q is reserved", k))
			case owner[k] != "" && owner[k] != b.Action:
				errs = errs.Append(field, fmt.Errorf("key %q is already bound to %s", k, owner[k]))
			default:
				owner[k] = b.Action
			}
		}
	}

	return errs.ToError()
}

func isReserved(k string) bool {
	for _, r := range reservedKeys {
		if strings.EqualFold(k, r) {
			return true
		}
	}
	return false
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must be >= 0, got %d", n)
	}
	return nil
}

func nonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("must be >= 0, got %s", d)
	}
	return nil
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}
