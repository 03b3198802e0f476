package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/canalyzer/internal/application"
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/rs/zerolog"
)

const (
	logFileMode = 0o600
	logDirMode  = 0o700
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the process logger. A configured log file receives JSON
// records; otherwise records go to console when it is non-nil and are
// dropped when it is nil, which is what the interactive viewer wants since
// it owns the terminal.
func New(settings application.LogSettings, console io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := parseLevel(settings.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	if settings.File != "" {
		if err := os.MkdirAll(filepath.Dir(settings.File), logDirMode); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
		}

		file, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
		}

		logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
		return logger, file, nil
	}

	if console == nil {
		return zerolog.Nop(), nopCloser{}, nil
	}

	writer := zerolog.ConsoleWriter{Out: console, TimeFormat: time.TimeOnly, NoColor: true}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, nopCloser{}, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return zerolog.InfoLevel, nil
	}

	level, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q", domain.ErrInvalidSettings, raw)
	}

	return level, nil
}
