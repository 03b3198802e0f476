package stream

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSplitsLinesAndTrimsEndings(t *testing.T) {
	reader := NewReader(strings.NewReader("ID: 1 X AA\r\nsleep\n\nID: 2 X BB"))
	ctx := context.Background()

	var lines []string
	for {
		line, err := reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}

	assert.Equal(t, []string{"ID: 1 X AA", "sleep", "", "ID: 2 X BB"}, lines)
	assert.NoError(t, reader.Close())
}

func TestReaderHonoursCancelledContext(t *testing.T) {
	reader := NewReader(strings.NewReader("ID: 1 X AA\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := reader.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("i/o error")
}

type trackingCloser struct {
	io.Reader
	closed bool
}

func (c *trackingCloser) Close() error {
	c.closed = true
	return nil
}

func TestReaderPropagatesReadFailure(t *testing.T) {
	_, err := NewReader(failingReader{}).ReadLine(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestReadCloserClosesUnderlyingReader(t *testing.T) {
	rc := &trackingCloser{Reader: strings.NewReader("")}

	require.NoError(t, NewReadCloser(rc).Close())
	assert.True(t, rc.closed)
}

func TestReaderRejectsInvalidUTF8Line(t *testing.T) {
	reader := NewReader(strings.NewReader("ID: 101 8 \xff\xfe12\nID: 102 8 3F\n\xe2\x82"))
	ctx := context.Background()

	_, err := reader.ReadLine(ctx)
	require.ErrorIs(t, err, ErrInvalidUTF8)

	line, err := reader.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ID: 102 8 3F", line)

	_, err = reader.ReadLine(ctx)
	require.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = reader.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}
