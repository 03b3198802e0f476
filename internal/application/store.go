package application

import (
	"slices"

	"github.com/bnema/canalyzer/internal/domain"
)

// Store aggregates records into one TrackedMessage per id. History is
// never trimmed, so memory grows with the number of observations.
type Store struct {
	messages map[domain.MessageID]*domain.TrackedMessage
}

func NewStore() *Store {
	return &Store{messages: make(map[domain.MessageID]*domain.TrackedMessage)}
}

func (s *Store) Merge(record domain.RawRecord) {
	if existing, ok := s.messages[record.ID]; ok {
		existing.Merge(record)
		return
	}

	s.messages[record.ID] = domain.NewTrackedMessage(record)
}

func (s *Store) MergeAll(records []domain.RawRecord) int {
	for _, record := range records {
		s.Merge(record)
	}

	return len(records)
}

func (s *Store) Len() int {
	return len(s.messages)
}

func (s *Store) Get(id domain.MessageID) (domain.TrackedMessage, bool) {
	msg, ok := s.messages[id]
	if !ok {
		return domain.TrackedMessage{}, false
	}

	return msg.Clone(), true
}

func (s *Store) ToggleIgnored(id domain.MessageID) bool {
	msg, ok := s.messages[id]
	if !ok {
		return false
	}

	msg.Ignored = !msg.Ignored
	return true
}

func (s *Store) TogglePinned(id domain.MessageID) bool {
	msg, ok := s.messages[id]
	if !ok {
		return false
	}

	msg.Pinned = !msg.Pinned
	return true
}

// Ordered returns the display order of every tracked message. The values
// share history storage with the store; callers must treat them as
// read-only snapshots of the current iteration.
func (s *Store) Ordered() []domain.TrackedMessage {
	view := make([]domain.TrackedMessage, 0, len(s.messages))
	for _, msg := range s.messages {
		entry := *msg
		entry.History = msg.History[:len(msg.History):len(msg.History)]
		view = append(view, entry)
	}

	slices.SortFunc(view, Compare)
	return view
}
