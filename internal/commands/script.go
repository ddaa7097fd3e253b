package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/tasklist/internal/core/todo"
	"github.com/colonyops/tasklist/pkg/iojson"
)

var (
	// ErrUnknownCommand is returned for a script line naming no known command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArgs is returned when a command's arguments are malformed.
	ErrInvalidArgs = errors.New("invalid arguments")
)

// Script operations.
const (
	OpInput  = "input"
	OpSubmit = "submit"
	OpAdd    = "add"
	OpToggle = "toggle"
	OpDelete = "delete"
	OpClear  = "clear"
	OpShow   = "show"
)

// ScriptStep is one parsed script command. It is also the element type of
// JSON scripts.
type ScriptStep struct {
	Op   string `json:"op"`
	Text string `json:"text,omitempty"`
	ID   int    `json:"id,omitempty"`

	// Line is the 1-based source line, or the step index for JSON scripts.
	Line int `json:"-"`
}

// StateSnapshot is the JSON view of a store.
type StateSnapshot struct {
	Tasks        []todo.Task `json:"tasks"`
	PendingInput string      `json:"pending_input"`
	Completed    int         `json:"completed"`
	Total        int         `json:"total"`
	Percent      int         `json:"percent"`
}

// Snapshot captures the current state of store.
func Snapshot(store *todo.Store) StateSnapshot {
	s := store.Summary()
	return StateSnapshot{
		Tasks:        store.Tasks(),
		PendingInput: store.PendingInput(),
		Completed:    s.Completed,
		Total:        s.Total,
		Percent:      s.Percent,
	}
}

// ParseScriptLine parses a single script line. Blank lines and lines whose
// first non-space character is '#' yield ok=false. A leading ':' before the
// command name is optional. The text of input and add is taken verbatim
// after the single separator following the command name.
func ParseScriptLine(line string) (step ScriptStep, ok bool, err error) {
	line = strings.TrimSuffix(line, "\r")

	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ScriptStep{}, false, nil
	}
	trimmed = strings.TrimPrefix(trimmed, ":")

	name, rest := trimmed, ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		name, rest = trimmed[:i], trimmed[i+1:]
	}

	step = ScriptStep{Op: strings.ToLower(name)}

	switch step.Op {
	case OpInput, OpAdd:
		step.Text = rest
	case OpToggle, OpDelete:
		args := strings.Fields(rest)
		if len(args) != 1 {
			return ScriptStep{}, false, fmt.Errorf("%w: %s takes exactly one task id", ErrInvalidArgs, step.Op)
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return ScriptStep{}, false, fmt.Errorf("%w: task id %q is not an integer", ErrInvalidArgs, args[0])
		}
		step.ID = id
	case OpSubmit, OpClear, OpShow:
		if strings.TrimSpace(rest) != "" {
			return ScriptStep{}, false, fmt.Errorf("%w: %s takes no arguments", ErrInvalidArgs, step.Op)
		}
	default:
		return ScriptStep{}, false, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}

	return step, true, nil
}

// ParseScript parses every line of r. The first malformed line aborts
// parsing with an error naming its line number.
func ParseScript(r io.Reader) ([]ScriptStep, error) {
	var steps []ScriptStep

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		step, ok, err := ParseScriptLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if !ok {
			continue
		}
		step.Line = n
		steps = append(steps, step)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return steps, nil
}

// ScriptRunner applies script steps to a store. show steps write a single
// JSON line to the output.
type ScriptRunner struct {
	store *todo.Store
	out   io.Writer
	log   zerolog.Logger
}

// NewScriptRunner creates a runner over store writing show output to out.
func NewScriptRunner(store *todo.Store, out io.Writer, log zerolog.Logger) *ScriptRunner {
	return &ScriptRunner{store: store, out: out, log: log}
}

// Run applies steps in order, stopping at the first error.
func (r *ScriptRunner) Run(steps []ScriptStep) error {
	for _, step := range steps {
		if err := r.Apply(step); err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}
	}
	return nil
}

// Apply runs a single step. Store no-ops (unknown ids, blank text) are not
// errors.
func (r *ScriptRunner) Apply(step ScriptStep) error {
	var applied bool

	switch step.Op {
	case OpInput:
		r.store.SetPendingInput(step.Text)
		applied = true
	case OpSubmit:
		_, applied = r.store.Submit()
	case OpAdd:
		_, applied = r.store.Add(step.Text)
	case OpToggle:
		_, applied = r.store.Toggle(step.ID)
	case OpDelete:
		_, applied = r.store.Delete(step.ID)
	case OpClear:
		applied = r.store.ClearAll() > 0
	case OpShow:
		if err := iojson.WriteLine(r.out, Snapshot(r.store)); err != nil {
			return fmt.Errorf("write state: %w", err)
		}
		applied = true
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, step.Op)
	}

	r.log.Debug().
		Str("op", step.Op).
		Int("line", step.Line).
		Bool("applied", applied).
		Msg("script step")

	return nil
}
