package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bnema/canalyzer/internal/ports"
)

// Reader splits an io.Reader into lines. A blocked read cannot be
// interrupted; ctx is only checked between lines.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer
}

var _ ports.LineSource = (*Reader)(nil)

var ErrInvalidUTF8 = errors.New("line is not valid UTF-8")

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// NewReadCloser is NewReader that also closes rc on Close.
func NewReadCloser(rc io.ReadCloser) *Reader {
	return &Reader{r: bufio.NewReader(rc), closer: rc}
}

func (s *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line, err := s.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		// The fragment read before the failure is dropped with the line.
		return "", err
	}
	if !utf8.ValidString(line) {
		return "", ErrInvalidUTF8
	}

	return trimLineEnding(line), nil
}

func (s *Reader) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func trimLineEnding(line string) string {
	return strings.TrimRight(line, "\r\n")
}
