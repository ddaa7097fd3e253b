package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/colonyops/tasklist/internal/core/config"
)

// KeyMap holds the resolved list bindings plus the fixed focus and submit
// keys. It implements help.KeyMap for the footer.
type KeyMap struct {
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
	Up     key.Binding
	Down   key.Binding
	Focus  key.Binding
	Help   key.Binding
	Quit   key.Binding

	Submit    key.Binding
	SwitchTab key.Binding
	Blur      key.Binding
	ForceQuit key.Binding
}

// NewKeyMap builds bindings from configured keys. Help text for the delete
// and clear actions comes from labels.
func NewKeyMap(keys config.Keys, labels config.Labels) KeyMap {
	return KeyMap{
		Toggle: newBinding(keys.Toggle, "toggle"),
		Delete: newBinding(keys.Delete, labels.Delete),
		Clear:  newBinding(keys.Clear, labels.ClearAll),
		Up:     newBinding(keys.Up, "up"),
		Down:   newBinding(keys.Down, "down"),
		Focus:  newBinding(keys.Focus, "new task"),
		Help:   newBinding(keys.Help, "help"),
		Quit:   newBinding(keys.Quit, "quit"),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", labels.Add)),
		SwitchTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "list")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// newBinding translates configured key names to bubbletea key strings.
func newBinding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, keyString(n))
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

func keyString(name string) string {
	if name == "space" {
		return " "
	}
	return name
}

// ShortHelp returns the footer bindings shown while the list is focused.
// Each shows only its first key; the help overlay lists the rest.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		firstKeyOnly(k.Toggle),
		firstKeyOnly(k.Delete),
		firstKeyOnly(k.Clear),
		firstKeyOnly(k.Help),
		firstKeyOnly(k.Quit),
	}
}

func firstKeyOnly(b key.Binding) key.Binding {
	h := b.Help()
	name, _, _ := strings.Cut(h.Key, "/")
	b.SetHelp(name, h.Desc)
	return b
}

// InputHelp returns the footer bindings shown while the input is focused.
func (k KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchTab, k.Blur, k.ForceQuit}
}

// FullHelp returns all bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchTab, k.Blur, k.ForceQuit},
		{k.Up, k.Down, k.Toggle, k.Delete, k.Clear, k.Focus, k.Help, k.Quit},
	}
}
