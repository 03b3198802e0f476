package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/canalyzer/internal/adapters/config"
	"github.com/bnema/canalyzer/internal/adapters/logging"
	"github.com/bnema/canalyzer/internal/adapters/render/viewer"
	"github.com/bnema/canalyzer/internal/adapters/snapshot"
	"github.com/bnema/canalyzer/internal/adapters/source/serial"
	"github.com/bnema/canalyzer/internal/adapters/source/stream"
	"github.com/bnema/canalyzer/internal/application"
	"github.com/bnema/canalyzer/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	clock      ports.Clock
	openDevice func(device string, baud int) (ports.LineSource, error)
	runViewer  func(context.Context, *application.Monitor, viewer.Options) error
	isTerminal func(any) bool
}

func wireApp() *app {
	return &app{
		clock: ports.SystemClock{},
		openDevice: func(device string, baud int) (ports.LineSource, error) {
			source, err := serial.Open(device, baud)
			if err != nil {
				return nil, err
			}
			return source, nil
		},
		runViewer:  viewer.Run,
		isTerminal: isTerminal,
	}
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func loadSettings(cmd *cobra.Command) (application.Settings, error) {
	settings, err := config.Load(viper.New(), cmd.Flags())
	if err != nil {
		return application.Settings{}, fmt.Errorf("load settings: %w", err)
	}

	return settings, nil
}

func (a *app) openSource(cmd *cobra.Command, settings application.SourceSettings) (ports.LineSource, application.SourceMode, string, error) {
	stdin := cmd.InOrStdin()
	mode := settings.Resolve(a.isTerminal(stdin))

	if mode == application.SourceModeStdin {
		return stream.NewReader(stdin), mode, "stdin", nil
	}

	source, err := a.openDevice(settings.Device, settings.Baud)
	if err != nil {
		return nil, mode, settings.Device, fmt.Errorf("open source: %w", err)
	}

	return source, mode, settings.Device, nil
}

func exportSnapshot(out io.Writer, settings application.SnapshotSettings, store *application.Store, logger zerolog.Logger) error {
	codec, err := snapshot.CodecFor(settings.Format)
	if err != nil {
		return err
	}

	exporter := application.NewExporter(codec, logger)
	if settings.Output == "" {
		return exporter.Export(out, store)
	}

	return snapshot.WriteFile(settings.Output, func(w io.Writer) error {
		return exporter.Export(w, store)
	})
}

func newLogger(settings application.LogSettings, console io.Writer) (zerolog.Logger, func(), error) {
	logger, closer, err := logging.New(settings, console)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("init logger: %w", err)
	}

	return logger, func() { _ = closer.Close() }, nil
}
