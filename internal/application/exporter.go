package application

import (
	"fmt"
	"io"

	"github.com/bnema/canalyzer/internal/ports"
	"github.com/rs/zerolog"
)

type Exporter struct {
	writer ports.SnapshotWriter
	logger zerolog.Logger
}

func NewExporter(writer ports.SnapshotWriter, logger zerolog.Logger) *Exporter {
	return &Exporter{
		writer: writer,
		logger: logger.With().Str("component", "snapshot").Logger(),
	}
}

func (e *Exporter) Export(w io.Writer, store *Store) error {
	messages := store.Ordered()
	if err := e.writer.WriteSnapshot(w, messages); err != nil {
		e.logger.Error().Err(err).Int("messages", len(messages)).Msg("snapshot export failed")
		return fmt.Errorf("write snapshot: %w", err)
	}

	e.logger.Debug().Int("messages", len(messages)).Msg("snapshot exported")
	return nil
}
