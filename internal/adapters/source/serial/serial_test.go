package serial

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/canalyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "ttyACM9"), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestOpenWithoutBaudReadsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.txt")
	require.NoError(t, os.WriteFile(path, []byte("ID: 101 X 3F\nsleep\n"), 0o600))

	source, err := Open(path, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = source.Close() })

	assert.Equal(t, path, source.Device())

	line, err := source.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ID: 101 X 3F", line)

	line, err = source.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sleep", line)

	_, err = source.ReadLine(context.Background())
	assert.True(t, errors.Is(err, io.EOF))
}
