package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/core/todo"
	"github.com/colonyops/tasklist/internal/tui/components"
)

const (
	markDone    = "✓"
	markPending = "○"
	cursorMark  = "›"
)

// todoPanel renders the task list. It holds no task state of its own; the
// store is read on every render.
type todoPanel struct {
	store  *todo.Store
	cursor int
	now    func() time.Time
}

func newTodoPanel(store *todo.Store, now func() time.Time) *todoPanel {
	return &todoPanel{store: store, now: now}
}

// selected returns the task under the cursor.
func (p *todoPanel) selected() (todo.Task, bool) {
	tasks := p.store.Tasks()
	if p.cursor < 0 || p.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[p.cursor], true
}

func (p *todoPanel) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *todoPanel) moveDown() {
	if p.cursor < p.store.Len()-1 {
		p.cursor++
	}
}

// clamp keeps the cursor on a valid row after tasks were removed.
func (p *todoPanel) clamp() {
	p.cursor = min(p.cursor, p.store.Len()-1)
	p.cursor = max(p.cursor, 0)
}

// view renders one row per task. focused highlights the cursor row.
func (p *todoPanel) view(width int, focused bool) string {
	tasks := p.store.Tasks()
	rows := make([]string, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, p.renderRow(t, width, focused && i == p.cursor))
	}
	return strings.Join(rows, "\n")
}

func (p *todoPanel) renderRow(t todo.Task, width int, selected bool) string {
	prefix := "  "
	if selected {
		prefix = styles.TaskSelectedStyle.Render(cursorMark) + " "
	}

	mark := styles.DividerStyle.Render(markPending)
	if t.Completed {
		mark = styles.TaskCheckStyle.Render(markDone)
	}

	age := formatAge(t.CreatedAt, p.now())
	ageW := lipgloss.Width(age)

	// prefix, mark and the spaces around the text
	textW := width - 4 - ageW - 2
	text := t.Text
	if width > 0 {
		text = truncate(text, textW)
	}

	var textStyle lipgloss.Style
	switch {
	case t.Completed:
		textStyle = styles.TaskDoneStyle
	case selected:
		textStyle = styles.TaskSelectedStyle
	default:
		textStyle = styles.TaskStyle
	}

	left := prefix + mark + " " + textStyle.Render(text)
	if width <= 0 {
		return left + " " + styles.TaskAgeStyle.Render(age)
	}
	return components.SpreadRow(left, styles.TaskAgeStyle.Render(age), width)
}

// emptyView renders the two-line empty state.
func emptyView(title, hint string) string {
	return styles.EmptyStateStyle.Render(title) + "\n" + styles.EmptyStateHintStyle.Render(hint)
}

// truncate shortens s to at most maxLen display cells, marking the cut
// with an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	if maxLen == 1 {
		return string(runes[:1])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxLen {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// formatAge returns a short relative age such as "now", "5m", "2h" or "3d".
func formatAge(created, now time.Time) string {
	if created.IsZero() {
		return ""
	}
	d := now.Sub(created)
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
