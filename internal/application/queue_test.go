package application

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDrainReturnsFIFOAndEmpties(t *testing.T) {
	q := NewQueue()
	at := time.Now()

	q.Push(record("1", "A", at))
	q.Push(record("2", "B", at))
	q.Push(record("1", "C", at))
	require.Equal(t, 3, q.Len())

	drained := q.Drain()
	require.Len(t, drained, 3)
	assert.Equal(t, "A", drained[0].Payload)
	assert.Equal(t, "B", drained[1].Payload)
	assert.Equal(t, "C", drained[2].Payload)

	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestQueueConcurrentProducerKeepsOrder(t *testing.T) {
	q := NewQueue()
	const total = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			q.Push(record("1", string(rune('a'+i%26)), time.Unix(int64(i), 0)))
		}
	}()

	var got []int64
	for len(got) < total {
		for _, r := range q.Drain() {
			got = append(got, r.ObservedAt.Unix())
		}
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, int64(i), got[i])
	}
}
