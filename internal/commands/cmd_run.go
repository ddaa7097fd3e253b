package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklist/internal/core/eventbus"
	"github.com/colonyops/tasklist/internal/core/logging"
	"github.com/colonyops/tasklist/internal/core/todo"
	"github.com/colonyops/tasklist/internal/printer"
	"github.com/colonyops/tasklist/pkg/iojson"
)

type RunCmd struct {
	flags *Flags

	// Command-specific flags
	lines   iojson.FileReader[any]
	steps   iojson.FileReader[[]ScriptStep]
	json    bool
	verbose bool
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Apply a script of task list commands",
		UsageText: "tasklist run [options] < script",
		Description: `Reads one command per line from a file or stdin, applies each to a fresh
task list, and prints the final state as JSON.

Commands (a leading ':' is optional, '#' starts a comment line):
  input <text>   set the pending input verbatim
  submit         add the pending input as a task
  add <text>     add a task directly
  toggle <id>    flip a task's completion
  delete <id>    remove a task
  clear          remove every task
  show           print the current state as one JSON line

Use --json to read a JSON array of steps such as [{"op":"add","text":"milk"}].
Use --verbose to print change notifications to stderr.`,
		Flags: []cli.Flag{
			cmd.lines.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "read the script as a JSON array of steps",
				Destination: &cmd.json,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "print change notifications to stderr",
				Destination: &cmd.verbose,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	ctx = logging.WithCommand(ctx, "run")

	steps, err := cmd.readSteps(c.String("file"))
	if err != nil {
		return err
	}

	log.Info().Ctx(ctx).Int("steps", len(steps)).Msg("running script")

	store, err := cmd.execute(ctx, steps, c.Root().Writer)
	if err != nil {
		return err
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, Snapshot(store))
}

func (cmd *RunCmd) readSteps(file string) ([]ScriptStep, error) {
	if cmd.json {
		cmd.steps.SetFile(file)
		steps, err := cmd.steps.Read()
		if err != nil {
			return nil, err
		}
		for i := range steps {
			steps[i].Line = i + 1
		}
		return steps, nil
	}

	cmd.lines.SetFile(file)
	r, err := cmd.lines.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return ParseScript(r)
}

// execute applies steps to a new store wired to the event bus. show output
// goes to out.
func (cmd *RunCmd) execute(ctx context.Context, steps []ScriptStep, out io.Writer) (*todo.Store, error) {
	store := todo.NewStore(todo.WithLogger(logging.Component("store")))

	bus := eventbus.New()
	eventbus.RegisterDebugLogger(bus, logging.Component("eventbus"))
	if cmd.verbose {
		p := printer.Ctx(ctx)
		eventbus.NewNotificationRouter(bus).Register()
		bus.SubscribeNotificationPublished(func(n eventbus.NotificationPublishedPayload) {
			p.Infof("%s", n.Message)
		})
	}
	detach := eventbus.Attach(bus, store)
	defer detach()

	runner := NewScriptRunner(store, out, logging.Component("script"))
	if err := runner.Run(steps); err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}

	return store, nil
}
