package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/canalyzer/internal/adapters/render/viewer"
	"github.com/bnema/canalyzer/internal/application"
	"github.com/spf13/cobra"
)

func runViewer(cmd *cobra.Command, app *app) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLogger, err := newLogger(settings.Log, nil)
	if err != nil {
		return err
	}
	defer closeLogger()

	source, mode, label, err := app.openSource(cmd, settings.Source)
	if err != nil {
		return err
	}
	defer source.Close()

	queue := application.NewQueue()
	store := application.NewStore()
	monitor := application.NewMonitor(store, queue, application.NewSession(), app.clock)
	ingestor := application.NewIngestor(source, queue, app.clock, settings.Ingest.SleepPause, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		if err := ingestor.Run(ctx); err != nil {
			logger.Error().Err(err).Msg("ingestion stopped")
		}
	}()

	opts := viewer.Options{
		PollInterval: settings.UI.PollInterval,
		IDWidth:      settings.UI.IDWidth,
		ColumnWidth:  settings.UI.ColumnWidth,
		SourceLabel:  label,
		InputTTY:     mode == application.SourceModeStdin,
		AltScreen:    true,
	}
	// Keep the snapshot on stdout clean when it is redirected.
	if !app.isTerminal(cmd.OutOrStdout()) {
		opts.Output = cmd.ErrOrStderr()
	}

	logger.Info().Str("source", label).Msg("viewer started")
	if err := app.runViewer(ctx, monitor, opts); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	cancel()

	stats := ingestor.Stats()
	logger.Info().
		Uint64("lines", stats.Lines).
		Uint64("records", stats.Records).
		Int("tracked", store.Len()).
		Msg("viewer stopped")

	if err := exportSnapshot(cmd.OutOrStdout(), settings.Snapshot, store, logger); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: snapshot not written: %v\n", err)
	}

	return nil
}
