package serial

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/bnema/canalyzer/internal/adapters/source/stream"
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/bnema/canalyzer/internal/ports"
)

// Source reads lines from a serial device such as /dev/ttyACM0.
type Source struct {
	device string
	file   *os.File
	lines  *stream.Reader
}

var _ ports.LineSource = (*Source)(nil)

// Open opens device read-only. A non-zero baud also switches the line to
// raw 8N1 at that speed; zero leaves the device configuration untouched.
func Open(device string, baud int) (*Source, error) {
	file, err := os.OpenFile(device, os.O_RDONLY|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrSourceUnavailable, device, err)
	}

	if baud > 0 {
		if err := configure(file, baud); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("configure serial device %s: %w", device, err)
		}
	}

	return &Source{
		device: device,
		file:   file,
		lines:  stream.NewReader(file),
	}, nil
}

func (s *Source) Device() string {
	return s.device
}

func (s *Source) ReadLine(ctx context.Context) (string, error) {
	return s.lines.ReadLine(ctx)
}

func (s *Source) Close() error {
	return s.file.Close()
}
