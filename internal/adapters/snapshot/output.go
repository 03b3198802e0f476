package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsonsnapshot "github.com/bnema/canalyzer/internal/adapters/snapshot/json"
	tomlsnapshot "github.com/bnema/canalyzer/internal/adapters/snapshot/toml"
	"github.com/bnema/canalyzer/internal/application"
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/bnema/canalyzer/internal/ports"
)

const (
	snapshotFileMode = 0o644
	snapshotDirMode  = 0o755
	tempFilePattern  = ".snapshot-*.tmp"
)

func CodecFor(format application.SnapshotFormat) (ports.SnapshotCodec, error) {
	switch format {
	case application.SnapshotFormatJSON:
		return jsonsnapshot.NewCodec(), nil
	case application.SnapshotFormatTOML:
		return tomlsnapshot.NewCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// FormatForPath guesses the snapshot format from a file extension,
// defaulting to JSON.
func FormatForPath(path string) application.SnapshotFormat {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return application.SnapshotFormatTOML
	}

	return application.SnapshotFormatJSON
}

// WriteFile replaces path with whatever write produces. The previous file
// is left untouched when write fails.
func WriteFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), snapshotDirMode); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := write(tempFile); err != nil {
		_ = tempFile.Close()
		return err
	}

	if err := tempFile.Chmod(snapshotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp snapshot file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp snapshot file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace snapshot file: %w", err)
	}

	cleanup = false
	return nil
}

func ReadFile(path string) ([]domain.TrackedMessage, error) {
	codec, err := CodecFor(FormatForPath(path))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer file.Close()

	return codec.ReadSnapshot(file)
}
