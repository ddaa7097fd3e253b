// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasklist/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays all available keyboard shortcuts as glamour-rendered
// markdown.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	width    int
}

// NewHelpDialog creates a new help dialog with the given sections.
func NewHelpDialog(title string, sections []HelpDialogSection, width int) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
		width:    width,
	}
}

// Markdown returns the dialog content as markdown.
func (h *HelpDialog) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", h.title)

	for _, section := range h.sections {
		if section.Title != "" {
			fmt.Fprintf(&b, "\n## %s\n", section.Title)
		}
		b.WriteString("\n| Key | Action |\n|---|---|\n")
		for _, e := range section.Entries {
			fmt.Fprintf(&b, "| `%s` | %s |\n", escapeCell(e.Key), escapeCell(e.Desc))
		}
	}

	return b.String()
}

// View renders the help dialog. When glamour cannot render, the raw
// markdown is shown.
func (h *HelpDialog) View() string {
	md := h.Markdown()

	wrap := max(h.width-8, 20)
	body := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			body = strings.Trim(out, "\n")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		body,
		styles.ModalHelpStyle.Render("esc/? close"),
	)

	return styles.ModalStyle.Render(content)
}

// Overlay renders the dialog centered in a width x height area.
func (h *HelpDialog) Overlay(width, height int) string {
	return Center(h.View(), width, height)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Center places content in the middle of a width x height area. A zero
// size returns content unchanged.
func Center(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Width returns the printable width of s.
func Width(s string) int {
	return lipgloss.Width(s)
}
