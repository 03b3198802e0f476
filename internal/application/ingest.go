package application

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/bnema/canalyzer/internal/ports"
	"github.com/rs/zerolog"
)

const readFailureBackoff = 50 * time.Millisecond

type IngestStats struct {
	Lines      uint64
	Records    uint64
	Skipped    uint64
	Pauses     uint64
	ReadErrors uint64
}

type Ingestor struct {
	source     ports.LineSource
	queue      *Queue
	clock      ports.Clock
	sleepPause time.Duration
	logger     zerolog.Logger

	lines      atomic.Uint64
	records    atomic.Uint64
	skipped    atomic.Uint64
	pauses     atomic.Uint64
	readErrors atomic.Uint64
}

func NewIngestor(source ports.LineSource, queue *Queue, clock ports.Clock, sleepPause time.Duration, logger zerolog.Logger) *Ingestor {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Ingestor{
		source:     source,
		queue:      queue,
		clock:      clock,
		sleepPause: sleepPause,
		logger:     logger.With().Str("component", "ingest").Logger(),
	}
}

// Run returns nil on io.EOF or ctx done. Other read failures count as an
// empty line.
func (i *Ingestor) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := i.source.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				i.logger.Debug().Msg("line source exhausted")
				return nil
			}
			if ctx.Err() != nil {
				return nil
			}

			i.readErrors.Add(1)
			i.logger.Debug().Err(err).Msg("line read failed, treating as empty line")
			line = ""
			if !sleepContext(ctx, readFailureBackoff) {
				return nil
			}
		}
		i.lines.Add(1)

		if IsSleepSignal(line) {
			i.pauses.Add(1)
			i.logger.Debug().Dur("pause", i.sleepPause).Msg("sleep signal received")
			if !sleepContext(ctx, i.sleepPause) {
				return nil
			}
			continue
		}

		record, ok := ParseLine(line, i.clock.Now())
		if !ok {
			i.skipped.Add(1)
			continue
		}

		i.records.Add(1)
		i.queue.Push(record)
	}
}

func (i *Ingestor) Stats() IngestStats {
	return IngestStats{
		Lines:      i.lines.Load(),
		Records:    i.records.Load(),
		Skipped:    i.skipped.Load(),
		Pauses:     i.pauses.Load(),
		ReadErrors: i.readErrors.Load(),
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
