package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklist/internal/core/eventbus"
	"github.com/colonyops/tasklist/internal/core/logging"
	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/core/todo"
	"github.com/colonyops/tasklist/internal/tui"
	"github.com/colonyops/tasklist/pkg/logutils"
)

type TuiCmd struct {
	flags *Flags

	theme    string
	noAlt    bool
	noToasts bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command.
// They are local so subcommands can reuse the names.
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "override the configured theme",
			Sources:     cli.EnvVars("TASKLIST_THEME"),
			Destination: &cmd.theme,
			Local:       true,
		},
		&cli.BoolFlag{
			Name:        "no-alt-screen",
			Usage:       "render inline instead of in the alternate screen",
			Destination: &cmd.noAlt,
			Local:       true,
		},
		&cli.BoolFlag{
			Name:        "no-toasts",
			Usage:       "disable change notifications",
			Destination: &cmd.noToasts,
			Local:       true,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	ctx = logging.WithCommand(ctx, "tui")

	loaded, err := cmd.flags.ReadConfig()
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config (run 'tasklist config validate'): %w", err)
	}

	cfg := *loaded
	if cmd.theme != "" {
		p, ok := styles.GetPalette(cmd.theme)
		if !ok {
			return fmt.Errorf("unknown theme %q", cmd.theme)
		}
		cfg.Theme = cmd.theme
		styles.SetTheme(p)
	}
	if cmd.noToasts {
		cfg.ToastTTL = 0
	}

	// Logging to stderr would draw over the screen; hold it until exit.
	if cmd.flags.LogFile == logutils.Stderr {
		prev := log.Logger
		held, deferred := logutils.Defer(prev)
		log.Logger = held
		defer func() {
			log.Logger = prev
			_ = deferred.Flush(os.Stderr)
		}()
	}

	store, bus := newWiredStore()

	m := tui.New(tui.Deps{Store: store, Bus: bus, Config: &cfg}, tui.Opts{})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !cmd.noAlt {
		opts = append(opts, tea.WithAltScreen())
	}

	log.Info().Ctx(ctx).Str("theme", cfg.Theme).Msg("starting tui")

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	s := store.Summary()
	log.Info().Ctx(ctx).
		Int("completed", s.Completed).
		Int("total", s.Total).
		Int("percent", s.Percent).
		Msg("tui exited")

	return nil
}

// newWiredStore creates an empty store attached to a bus that logs events
// and routes them to notifications.
func newWiredStore() (*todo.Store, *eventbus.EventBus) {
	store := todo.NewStore(todo.WithLogger(logging.Component("store")))

	bus := eventbus.New()
	eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
	eventbus.NewNotificationRouter(bus).Register()
	eventbus.Attach(bus, store)

	return store, bus
}
