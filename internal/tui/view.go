package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/tui/components"
)

const (
	defaultWidth = 60
	maxWidth     = 72
	minWidth     = 24
)

// View renders the full screen.
func (m Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpDialog().Overlay(m.width, m.height)
	case stateConfirming:
		return m.confirm.Overlay(m.width, m.height)
	}

	w := m.contentWidth()
	sections := []string{
		styles.TitleStyle.Render(m.cfg.Labels.Title),
		m.renderInput(),
		m.renderSummary(w),
		"",
		m.renderTasks(w),
	}

	if toasts := m.toastView.View(w); toasts != "" {
		sections = append(sections, "", toasts)
	}

	sections = append(sections, "", m.renderFooter())

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n"))
}

func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		return defaultWidth
	}
	// outer padding
	w -= 4
	return min(max(w, minWidth), maxWidth)
}

func (m Model) addButton() string {
	label := "⏎ " + m.cfg.Labels.Add
	if m.focus == focusInput && strings.TrimSpace(m.store.PendingInput()) != "" {
		return styles.ButtonFocusStyle.Render(label)
	}
	return styles.ButtonStyle.Render(label)
}

func (m Model) renderInput() string {
	box := styles.InputStyle
	if m.focus == focusInput {
		box = styles.InputFocusStyle
	}

	field := box.Width(m.input.Width + 2).Render(m.input.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", m.addButton())
}

func (m Model) renderSummary(width int) string {
	s := m.store.Summary()

	left := styles.StatsStyle.Render(fmt.Sprintf("%s: %d / %d", m.cfg.Labels.Done, s.Completed, s.Total))
	right := styles.PercentStyle.Render(fmt.Sprintf("%d%% %s", s.Percent, m.cfg.Labels.Complete))

	return components.SpreadRow(left, right, width) + "\n" + m.progress.ViewAs(s.Ratio())
}

func (m Model) renderTasks(width int) string {
	if m.store.TotalCount() == 0 {
		return emptyView(m.cfg.Labels.Empty, m.cfg.Labels.EmptyHint)
	}
	return m.panel.view(width, m.focus == focusList)
}

func (m Model) renderFooter() string {
	if m.focus == focusInput {
		return m.help.ShortHelpView(m.keys.InputHelp())
	}

	// clear all is only offered while there is something to clear
	keys := m.keys
	keys.Clear.SetEnabled(m.store.TotalCount() > 0)
	return m.help.ShortHelpView(keys.ShortHelp())
}

func (m Model) helpDialog() *components.HelpDialog {
	groups := m.keys.FullHelp()
	titles := []string{"Input", "List"}

	sections := make([]components.HelpDialogSection, 0, len(groups))
	for i, group := range groups {
		section := components.HelpDialogSection{Title: titles[i]}
		for _, b := range group {
			h := b.Help()
			section.Entries = append(section.Entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
		}
		sections = append(sections, section)
	}

	return components.NewHelpDialog(m.cfg.Labels.Title, sections, m.contentWidth())
}
