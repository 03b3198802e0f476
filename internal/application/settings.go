package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/canalyzer/internal/domain"
)

type SnapshotFormat string

const (
	SnapshotFormatJSON SnapshotFormat = "json"
	SnapshotFormatTOML SnapshotFormat = "toml"
)

func (f SnapshotFormat) Valid() bool {
	switch f {
	case SnapshotFormatJSON, SnapshotFormatTOML:
		return true
	default:
		return false
	}
}

type SourceMode string

const (
	SourceModeAuto   SourceMode = "auto"
	SourceModeDevice SourceMode = "device"
	SourceModeStdin  SourceMode = "stdin"
)

func (m SourceMode) Valid() bool {
	switch m {
	case SourceModeAuto, SourceModeDevice, SourceModeStdin:
		return true
	default:
		return false
	}
}

const (
	DefaultDevice       = "/dev/ttyACM0"
	DefaultBaud         = 115200
	DefaultSleepPause   = time.Second
	DefaultPollInterval = 250 * time.Millisecond
	DefaultColumnWidth  = 16
	DefaultIDWidth      = 6
	DefaultLogLevel     = "info"
)

type Settings struct {
	Source   SourceSettings
	Ingest   IngestSettings
	UI       UISettings
	Snapshot SnapshotSettings
	Log      LogSettings
}

type SourceSettings struct {
	Mode   SourceMode
	Device string
	// Baud configures the serial line speed; 0 leaves the device untouched.
	Baud int
}

type IngestSettings struct {
	SleepPause time.Duration
}

type UISettings struct {
	PollInterval time.Duration
	ColumnWidth  int
	IDWidth      int
}

type SnapshotSettings struct {
	Format SnapshotFormat
	// Output is a file path; empty means standard output.
	Output string
}

type LogSettings struct {
	File  string
	Level string
}

func DefaultSettings() Settings {
	return Settings{
		Source: SourceSettings{
			Mode:   SourceModeAuto,
			Device: DefaultDevice,
			Baud:   DefaultBaud,
		},
		Ingest: IngestSettings{SleepPause: DefaultSleepPause},
		UI: UISettings{
			PollInterval: DefaultPollInterval,
			ColumnWidth:  DefaultColumnWidth,
			IDWidth:      DefaultIDWidth,
		},
		Snapshot: SnapshotSettings{Format: SnapshotFormatJSON},
		Log:      LogSettings{Level: DefaultLogLevel},
	}
}

func (s Settings) Validate() error {
	if !s.Source.Mode.Valid() {
		return fmt.Errorf("%w: unknown source mode %q", domain.ErrInvalidSettings, s.Source.Mode)
	}
	if s.Source.Mode != SourceModeStdin && strings.TrimSpace(s.Source.Device) == "" {
		return fmt.Errorf("%w: source device is required unless reading stdin", domain.ErrInvalidSettings)
	}
	if s.Source.Baud < 0 {
		return fmt.Errorf("%w: baud must not be negative", domain.ErrInvalidSettings)
	}
	if s.Ingest.SleepPause < 0 {
		return fmt.Errorf("%w: sleep pause must not be negative", domain.ErrInvalidSettings)
	}
	if s.UI.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", domain.ErrInvalidSettings)
	}
	if s.UI.ColumnWidth <= 0 || s.UI.IDWidth <= 0 {
		return fmt.Errorf("%w: column widths must be positive", domain.ErrInvalidSettings)
	}
	if !s.Snapshot.Format.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s.Snapshot.Format)
	}

	return nil
}

// Resolve picks the concrete source. Auto reads stdin when it is piped and
// the device otherwise.
func (s SourceSettings) Resolve(stdinIsTerminal bool) SourceMode {
	if s.Mode != SourceModeAuto {
		return s.Mode
	}
	if stdinIsTerminal {
		return SourceModeDevice
	}

	return SourceModeStdin
}
