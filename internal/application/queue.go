package application

import (
	"sync"

	"github.com/bnema/canalyzer/internal/domain"
)

type Queue struct {
	mu    sync.Mutex
	items []domain.RawRecord
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(record domain.RawRecord) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, record)
}

func (q *Queue) Drain() []domain.RawRecord {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
