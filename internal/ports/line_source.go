package ports

import "context"

// LineSource yields one text line per call, without the trailing newline.
// io.EOF signals that no further lines will arrive.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
	Close() error
}
