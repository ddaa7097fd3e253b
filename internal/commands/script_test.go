package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tasklist/internal/core/todo"
)

func TestParseScriptLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want ScriptStep
		ok   bool
	}{
		{name: "blank", line: "   ", ok: false},
		{name: "comment", line: "  # note", ok: false},
		{name: "submit", line: "submit", want: ScriptStep{Op: OpSubmit}, ok: true},
		{name: "leading colon", line: ":clear", want: ScriptStep{Op: OpClear}, ok: true},
		{name: "input verbatim", line: "input   Buy milk  ", want: ScriptStep{Op: OpInput, Text: "  Buy milk  "}, ok: true},
		{name: "input empty", line: "input", want: ScriptStep{Op: OpInput}, ok: true},
		{name: "input keeps hash", line: "input #1 priority", want: ScriptStep{Op: OpInput, Text: "#1 priority"}, ok: true},
		{name: "add", line: "add Walk dog", want: ScriptStep{Op: OpAdd, Text: "Walk dog"}, ok: true},
		{name: "toggle", line: ":toggle 3", want: ScriptStep{Op: OpToggle, ID: 3}, ok: true},
		{name: "delete tab", line: "delete\t7", want: ScriptStep{Op: OpDelete, ID: 7}, ok: true},
		{name: "case insensitive", line: "SHOW", want: ScriptStep{Op: OpShow}, ok: true},
		{name: "crlf", line: "submit\r", want: ScriptStep{Op: OpSubmit}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseScriptLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScriptLine_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"frobnicate", ErrUnknownCommand},
		{"toggle", ErrInvalidArgs},
		{"toggle abc", ErrInvalidArgs},
		{"delete 1 2", ErrInvalidArgs},
		{"submit now", ErrInvalidArgs},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, _, err := ParseScriptLine(tt.line)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseScript_ReportsLineNumber(t *testing.T) {
	_, err := ParseScript(strings.NewReader("add a\n\n# skip\nbogus\n"))

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseScript_RecordsLines(t *testing.T) {
	steps, err := ParseScript(strings.NewReader("# header\nadd a\n\ntoggle 1\n"))
	require.NoError(t, err)

	require.Len(t, steps, 2)
	assert.Equal(t, 2, steps[0].Line)
	assert.Equal(t, 4, steps[1].Line)
}

func TestScriptRunner_Scenario(t *testing.T) {
	script := `
input Buy milk
submit
add Walk dog
toggle 1
show
delete 2
toggle 99
input   draft
`
	steps, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)

	var out bytes.Buffer
	store := todo.NewStore()
	require.NoError(t, NewScriptRunner(store, &out, zerolog.Nop()).Run(steps))

	var shown StateSnapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &shown))
	assert.Equal(t, 2, shown.Total)
	assert.Equal(t, 1, shown.Completed)
	assert.Equal(t, 50, shown.Percent)

	final := Snapshot(store)
	require.Len(t, final.Tasks, 1)
	assert.Equal(t, "Buy milk", final.Tasks[0].Text)
	assert.True(t, final.Tasks[0].Completed)
	assert.Equal(t, "  draft", final.PendingInput)
	assert.Equal(t, 100, final.Percent)
}

func TestScriptRunner_UnknownOp(t *testing.T) {
	r := NewScriptRunner(todo.NewStore(), &bytes.Buffer{}, zerolog.Nop())

	err := r.Run([]ScriptStep{{Op: "add", Text: "a", Line: 1}, {Op: "explode", Line: 2}})

	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := &cli.Command{Name: "tasklist", Writer: &out, ErrWriter: &out}
	app = NewRunCmd(&Flags{}).Register(app)

	err := app.Run(context.Background(), append([]string{"tasklist"}, args...))
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunCmd_LineScript(t *testing.T) {
	path := writeFile(t, "script.txt", "add Buy milk\nadd Walk dog\ntoggle 2\n")

	out, err := runApp(t, "run", "-f", path)
	require.NoError(t, err)

	var state StateSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, 2, state.Total)
	assert.Equal(t, 1, state.Completed)
	assert.Equal(t, 50, state.Percent)
	assert.Contains(t, out, "\n  \"tasks\"", "final state is indented")
}

func TestRunCmd_JSONScript(t *testing.T) {
	path := writeFile(t, "script.json", `[
  {"op": "input", "text": "Buy milk"},
  {"op": "submit"},
  {"op": "clear"},
  {"op": "add", "text": "again"}
]`)

	out, err := runApp(t, "run", "--json", "-f", path)
	require.NoError(t, err)

	var state StateSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	require.Len(t, state.Tasks, 1)
	assert.Equal(t, 2, state.Tasks[0].ID, "ids are not reused after clear")
}

func TestRunCmd_ErrorNamesLine(t *testing.T) {
	path := writeFile(t, "script.txt", "add a\ntoggle one\n")

	_, err := runApp(t, "run", "-f", path)
	require.ErrorIs(t, err, ErrInvalidArgs)
	assert.Contains(t, err.Error(), "line 2")
}

func TestRunCmd_JSONUnknownOp(t *testing.T) {
	path := writeFile(t, "script.json", `[{"op":"add","text":"a"},{"op":"nope"}]`)

	_, err := runApp(t, "run", "--json", "-f", path)
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")
}
