package viewer

import (
	"github.com/bnema/canalyzer/internal/application"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Filter key.Binding
	Ignore key.Binding
	Pin    key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

var DefaultKeyMap = KeyMap{
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Ignore: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "ignore"),
	),
	Pin: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pin to top"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// forMode enables the bindings that mean something in mode so the help
// line only advertises those.
func (k KeyMap) forMode(mode application.Mode) KeyMap {
	filtering := mode == application.ModeFilter
	k.Ignore.SetEnabled(filtering)
	k.Pin.SetEnabled(filtering)
	k.Up.SetEnabled(filtering)
	k.Down.SetEnabled(filtering)
	if filtering {
		k.Filter.SetHelp("f", "exit filtering")
	} else {
		k.Filter.SetHelp("f", "filter")
	}

	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Ignore, k.Pin, k.Up, k.Down, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k KeyMap) eventFor(msg tea.KeyMsg) (application.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return application.EventQuit, true
	case key.Matches(msg, k.Filter):
		return application.EventFilterToggle, true
	case key.Matches(msg, k.Ignore):
		return application.EventIgnoreToggle, true
	case key.Matches(msg, k.Pin):
		return application.EventPinToggle, true
	case key.Matches(msg, k.Up):
		return application.EventNavigateUp, true
	case key.Matches(msg, k.Down):
		return application.EventNavigateDown, true
	default:
		return 0, false
	}
}
