package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tasklist/internal/core/notify"
	"github.com/colonyops/tasklist/internal/core/styles"
)

const (
	iconToastInfo    = "✓"
	iconToastWarning = "!"
	iconToastError   = "✗"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the active toasts stacked vertically, oldest first.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

// View renders the toast stack. width caps each toast; zero means no cap.
func (v *ToastView) View(width int) string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t, width))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast, width int) string {
	var icon string
	var style lipgloss.Style

	switch t.notification.Level {
	case notify.LevelError:
		icon = iconToastError
		style = styles.ToastErrorStyle
	case notify.LevelWarning:
		icon = iconToastWarning
		style = styles.ToastWarningStyle
	default:
		icon = iconToastInfo
		style = styles.ToastInfoStyle
	}

	content := icon + " " + t.notification.Message
	if width > 0 {
		// border and padding take four cells
		content = truncate(content, width-4)
	}
	return style.Render(content)
}
