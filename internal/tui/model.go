// Package tui implements the interactive task list on top of bubbletea.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/tasklist/internal/core/config"
	"github.com/colonyops/tasklist/internal/core/eventbus"
	"github.com/colonyops/tasklist/internal/core/logging"
	"github.com/colonyops/tasklist/internal/core/notify"
	"github.com/colonyops/tasklist/internal/core/styles"
	"github.com/colonyops/tasklist/internal/core/todo"
	"github.com/colonyops/tasklist/internal/tui/components"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateConfirming
	stateHelp
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Deps are the collaborators the model drives. Store and Config are
// required. Without a Bus no toasts are shown.
type Deps struct {
	Store  *todo.Store
	Bus    *eventbus.EventBus
	Config *config.Config
}

// Opts tune the model for tests.
type Opts struct {
	// Now is used for relative age labels. Defaults to time.Now.
	Now func() time.Time
}

// Model is the bubbletea model for the task list.
type Model struct {
	store *todo.Store
	cfg   *config.Config
	keys  KeyMap
	log   zerolog.Logger
	now   func() time.Time

	input    textinput.Model
	progress progress.Model
	help     help.Model

	panel     *todoPanel
	toasts    *ToastController
	toastView *ToastView
	confirm   components.ConfirmModal

	state  UIState
	focus  focusArea
	width  int
	height int
}

// New builds the model and subscribes it to bus notifications.
func New(deps Deps, opts Opts) Model {
	cfg := deps.Config
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Labels.Placeholder
	ti.CharLimit = cfg.CharLimit
	ti.PlaceholderStyle = styles.HelpStyle
	ti.TextStyle = styles.TaskStyle
	ti.SetValue(deps.Store.PendingInput())
	ti.Focus()

	start, end := styles.ProgressColors()
	bar := progress.New(
		progress.WithGradient(string(start), string(end)),
		progress.WithoutPercentage(),
		progress.WithWidth(defaultWidth),
	)
	bar.EmptyColor = string(styles.ColorSurface)

	h := help.New()
	h.Styles.ShortKey = styles.CommandHeaderStyle
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.DividerStyle

	toasts := NewToastController(cfg.ToastTTL)
	panel := newTodoPanel(deps.Store, now)

	if deps.Bus != nil {
		deps.Bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
			toasts.Push(notify.Notification{Level: p.Level, Message: p.Message, CreatedAt: now()})
		})
		deps.Bus.SubscribeChanges(func(e eventbus.Event, _ todo.Change) {
			if e == eventbus.EventTaskDeleted || e == eventbus.EventTasksCleared {
				panel.clamp()
			}
		})
	}

	m := Model{
		store:     deps.Store,
		cfg:       cfg,
		keys:      NewKeyMap(cfg.Keys, cfg.Labels),
		log:       logging.Component("tui"),
		now:       now,
		input:     ti,
		progress:  bar,
		help:      h,
		panel:     panel,
		toasts:    toasts,
		toastView: NewToastView(toasts),
	}
	m.resize()

	return m
}

// Init starts the cursor blink of the focused input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		m, cmd = m.handleKey(msg)
	default:
		if m.focus == focusInput {
			m.input, cmd = m.input.Update(msg)
		}
	}

	return m, tea.Batch(cmd, m.ensureToastTick())
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.state {
	case stateConfirming:
		return m.handleConfirmKey(msg)
	case stateHelp:
		switch msg.String() {
		case "esc", "q":
			m.state = stateNormal
		default:
			if key.Matches(msg, m.keys.Help) {
				m.state = stateNormal
			}
		}
		return m, nil
	}

	if m.focus == focusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if task, ok := m.store.Submit(); ok {
			m.log.Debug().Int("task_id", task.ID).Msg("task submitted")
		}
		m.input.SetValue(m.store.PendingInput())
		return m, nil
	case key.Matches(msg, m.keys.SwitchTab), key.Matches(msg, m.keys.Blur):
		return m.focusList(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetPendingInput(m.input.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchTab), key.Matches(msg, m.keys.Focus):
		return m.focusInput()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.panel.moveUp()
	case key.Matches(msg, m.keys.Down):
		m.panel.moveDown()
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.panel.selected(); ok {
			m.store.Toggle(t.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.panel.selected(); ok {
			m.store.Delete(t.ID)
			m.panel.clamp()
		}
	case key.Matches(msg, m.keys.Clear):
		return m.requestClear(), nil
	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)

	switch {
	case m.confirm.Confirmed():
		n := m.store.ClearAll()
		m.panel.clamp()
		m.log.Debug().Int("removed", n).Msg("cleared tasks")
		m.state = stateNormal
	case m.confirm.Cancelled():
		m.state = stateNormal
	}

	return m, nil
}

// requestClear clears every task, asking first when confirm_clear is set.
// With no tasks it does nothing.
func (m Model) requestClear() Model {
	total := m.store.TotalCount()
	if total == 0 {
		return m
	}

	if !m.cfg.ConfirmClear {
		m.store.ClearAll()
		m.panel.clamp()
		return m
	}

	m.confirm = components.NewConfirmModal(fmt.Sprintf("%s: %d %s?", m.cfg.Labels.ClearAll, total, plural(total, "task", "tasks")))
	m.state = stateConfirming
	return m
}

func (m Model) focusInput() (Model, tea.Cmd) {
	m.focus = focusInput
	return m, m.input.Focus()
}

func (m Model) focusList() Model {
	m.focus = focusList
	m.input.Blur()
	m.panel.clamp()
	return m
}

// ensureToastTick starts the toast timer when toasts appeared and no tick
// is pending.
func (m Model) ensureToastTick() tea.Cmd {
	if !m.toasts.HasToasts() || m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) resize() {
	w := m.contentWidth()
	m.progress.Width = w
	m.help.Width = w
	// box border and padding plus the add button
	m.input.Width = max(w-4-components.Width(m.addButton()), 1)
}

// InputFocused reports whether the input field has focus.
func (m Model) InputFocused() bool {
	return m.focus == focusInput
}

// Cursor returns the index of the selected task row.
func (m Model) Cursor() int {
	return m.panel.cursor
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
