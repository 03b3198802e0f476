package application

import (
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/bnema/canalyzer/internal/ports"
)

type Row struct {
	ID       domain.MessageID
	Ignored  bool
	Pinned   bool
	Selected bool
	Values   []domain.DiffedValue
}

type Status struct {
	Mode    Mode
	Tracked int
	// Pending grows while the session is in Filter mode.
	Pending int
}

// Monitor is not safe for concurrent use; only the queue is shared with
// the ingestion goroutine.
type Monitor struct {
	store   *Store
	queue   *Queue
	session *Session
	clock   ports.Clock
	view    []domain.TrackedMessage
}

func NewMonitor(store *Store, queue *Queue, session *Session, clock ports.Clock) *Monitor {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Monitor{
		store:   store,
		queue:   queue,
		session: session,
		clock:   clock,
	}
}

// Step leaves the queue untouched while filtering.
func (m *Monitor) Step() int {
	merged := 0
	if m.session.Mode() == ModeBrowse {
		merged = m.store.MergeAll(m.queue.Drain())
	}

	m.view = m.store.Ordered()
	m.session.Revalidate(len(m.view))
	return merged
}

func (m *Monitor) Handle(event Event) bool {
	if m.session.Handle(event, m.view, m.store) {
		return true
	}

	m.Step()
	return false
}

func (m *Monitor) Mode() Mode {
	return m.session.Mode()
}

func (m *Monitor) View() []domain.TrackedMessage {
	return m.view
}

func (m *Monitor) Store() *Store {
	return m.store
}

func (m *Monitor) Status() Status {
	return Status{
		Mode:    m.session.Mode(),
		Tracked: m.store.Len(),
		Pending: m.queue.Len(),
	}
}

func (m *Monitor) Rows(columns int) []Row {
	now := m.clock.Now()
	selected, filtering := m.session.Selected()

	rows := make([]Row, 0, len(m.view))
	for i, msg := range m.view {
		rows = append(rows, Row{
			ID:       msg.ID,
			Ignored:  msg.Ignored,
			Pinned:   msg.Pinned,
			Selected: filtering && i == selected,
			Values:   msg.DiffColumns(columns, now),
		})
	}

	return rows
}
