package domain

import "time"

type TrackedMessage struct {
	ID      MessageID
	History []RawRecord
	Ignored bool
	Pinned  bool
}

func NewTrackedMessage(record RawRecord) *TrackedMessage {
	return &TrackedMessage{
		ID:      record.ID,
		History: []RawRecord{record},
	}
}

func (m *TrackedMessage) Merge(record RawRecord) {
	m.History = append(m.History, record)
}

func (m TrackedMessage) Latest() RawRecord {
	if len(m.History) == 0 {
		return RawRecord{ID: m.ID}
	}

	return m.History[len(m.History)-1]
}

func (m TrackedMessage) Previous() *RawRecord {
	if len(m.History) < 2 {
		return nil
	}

	previous := m.History[len(m.History)-2]
	return &previous
}

func (m TrackedMessage) UpdatedAt() time.Time {
	return m.Latest().ObservedAt
}

// Clone returns a copy whose history does not alias the receiver's.
func (m TrackedMessage) Clone() TrackedMessage {
	history := make([]RawRecord, len(m.History))
	copy(history, m.History)
	m.History = history
	return m
}

type DiffedValue struct {
	Cells []Cell
	Tier  RecencyTier
}

// DiffColumns returns up to n values, newest first.
func (m TrackedMessage) DiffColumns(n int, now time.Time) []DiffedValue {
	if n <= 0 || len(m.History) == 0 {
		return nil
	}

	if n > len(m.History) {
		n = len(m.History)
	}

	columns := make([]DiffedValue, 0, n)
	for i := len(m.History) - 1; i >= len(m.History)-n; i-- {
		var previous *RawRecord
		if i > 0 {
			previous = &m.History[i-1]
		}

		current := m.History[i]
		columns = append(columns, DiffedValue{
			Cells: Diff(current, previous),
			Tier:  RecencyTierAt(current.ObservedAt, now),
		})
	}

	return columns
}
