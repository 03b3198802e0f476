package application

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type scriptedRead struct {
	line string
	err  error
}

type scriptedSource struct {
	mu     sync.Mutex
	reads  []scriptedRead
	closed bool
}

func newScriptedSource(lines ...string) *scriptedSource {
	reads := make([]scriptedRead, 0, len(lines))
	for _, line := range lines {
		reads = append(reads, scriptedRead{line: line})
	}

	return &scriptedSource{reads: reads}
}

func (s *scriptedSource) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.reads) == 0 {
		return "", io.EOF
	}

	next := s.reads[0]
	s.reads = s.reads[1:]
	return next.line, next.err
}

func (s *scriptedSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

func record(id, payload string, at time.Time) domain.RawRecord {
	return domain.RawRecord{ID: domain.MessageID(id), Payload: payload, ObservedAt: at}
}

func viewIDs(view []domain.TrackedMessage) []domain.MessageID {
	ids := make([]domain.MessageID, 0, len(view))
	for _, msg := range view {
		ids = append(ids, msg.ID)
	}

	return ids
}
