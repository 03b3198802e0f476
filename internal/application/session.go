package application

import "github.com/bnema/canalyzer/internal/domain"

type Mode int

const (
	ModeBrowse Mode = iota
	ModeFilter
)

func (m Mode) String() string {
	switch m {
	case ModeFilter:
		return "filter"
	default:
		return "browse"
	}
}

type Event int

const (
	EventQuit Event = iota + 1
	EventFilterToggle
	EventIgnoreToggle
	EventPinToggle
	EventNavigateUp
	EventNavigateDown
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventFilterToggle:
		return "filter-toggle"
	case EventIgnoreToggle:
		return "ignore-toggle"
	case EventPinToggle:
		return "pin-toggle"
	case EventNavigateUp:
		return "navigate-up"
	case EventNavigateDown:
		return "navigate-down"
	default:
		return "unknown"
	}
}

type FlagToggler interface {
	ToggleIgnored(id domain.MessageID) bool
	TogglePinned(id domain.MessageID) bool
}

// Session is the Browse/Filter interaction state. The selection is a
// position in the ordered view, not an id: after a reorder it points at
// whatever entry now occupies that position.
type Session struct {
	mode     Mode
	selected int
}

func NewSession() *Session {
	return &Session{mode: ModeBrowse}
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Selected reports the selection index; ok is false outside Filter mode.
func (s *Session) Selected() (int, bool) {
	if s.mode != ModeFilter {
		return 0, false
	}

	return s.selected, true
}

func (s *Session) Revalidate(count int) {
	if s.mode != ModeFilter {
		return
	}

	if count <= 0 || s.selected < 0 {
		s.selected = 0
		return
	}

	if s.selected >= count {
		s.selected = count - 1
	}
}

func (s *Session) Handle(event Event, view []domain.TrackedMessage, flags FlagToggler) bool {
	switch event {
	case EventQuit:
		return true
	case EventFilterToggle:
		if s.mode == ModeBrowse {
			s.mode = ModeFilter
		} else {
			s.mode = ModeBrowse
		}
		s.selected = 0
		return false
	}

	if s.mode != ModeFilter {
		return false
	}

	s.Revalidate(len(view))
	count := len(view)

	switch event {
	case EventNavigateDown:
		if count > 0 {
			s.selected = (s.selected + 1) % count
		}
	case EventNavigateUp:
		if count > 0 {
			s.selected = (s.selected + count - 1) % count
		}
	case EventIgnoreToggle:
		if s.selected < count {
			flags.ToggleIgnored(view[s.selected].ID)
		}
	case EventPinToggle:
		if s.selected < count {
			flags.TogglePinned(view[s.selected].ID)
		}
	}

	return false
}
