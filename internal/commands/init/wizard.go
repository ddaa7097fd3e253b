// Package initcmd implements the interactive configuration wizard behind
// "tasklist init".
package initcmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/printer"
)

// toastChoices are the toast lifetimes offered by the wizard.
var toastChoices = []time.Duration{0, 2 * time.Second, 3 * time.Second, 5 * time.Second}

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
	Theme      string
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions

	// prompt collects answers interactively. Replaced in tests.
	prompt func(cfg *config.Config) error
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts, prompt: runForm}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if w.opts.Theme != "" {
		cfg.Theme = w.opts.Theme
	}

	if !w.opts.Yes {
		if err := w.prompt(&cfg); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				p.Infof("Init cancelled")
				return nil
			}
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	backup, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return err
	}
	if backup != "" {
		p.Infof("Backed up existing config to %s", backup)
	}

	if err := cfg.Write(w.opts.ConfigPath); err != nil {
		return err
	}

	p.Successf("Wrote %s", w.opts.ConfigPath)
	w.printNextSteps(p)

	return nil
}

func runForm(cfg *config.Config) error {
	themeOpts := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	toastOpts := make([]huh.Option[time.Duration], 0, len(toastChoices))
	for _, d := range toastChoices {
		label := d.String()
		if d == 0 {
			label = "off"
		}
		toastOpts = append(toastOpts, huh.NewOption(label, d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&cfg.Theme),
			huh.NewInput().
				Title("List title").
				Value(&cfg.Labels.Title),
			huh.NewConfirm().
				Title("Confirm before clearing all tasks?").
				Value(&cfg.ConfirmClear),
			huh.NewSelect[time.Duration]().
				Title("Change notifications").
				Description("How long toasts stay on screen").
				Options(toastOpts...).
				Value(&cfg.ToastTTL),
		),
	).WithTheme(styles.FormTheme())

	return form.Run()
}

func (w *Wizard) printNextSteps(p *printer.Printer) {
	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'tasklist config validate' to check the file")
	p.Printf("  2. Run 'tasklist' to open your list")
}
