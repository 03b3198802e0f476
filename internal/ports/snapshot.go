package ports

import (
	"io"

	"github.com/bnema/canalyzer/internal/domain"
)

type SnapshotWriter interface {
	WriteSnapshot(w io.Writer, messages []domain.TrackedMessage) error
}

type SnapshotReader interface {
	ReadSnapshot(r io.Reader) ([]domain.TrackedMessage, error)
}

type SnapshotCodec interface {
	SnapshotWriter
	SnapshotReader
}
