package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/canalyzer/internal/application"
	"github.com/spf13/cobra"
)

func newCaptureCmd(app *app) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Collect records without the viewer and print the snapshot",
		Long: "capture reads the configured source until it ends (stdin) or until --duration elapses, " +
			"then writes the snapshot like the viewer does on quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if duration < 0 {
				return fmt.Errorf("duration must not be negative")
			}

			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			logger, closeLogger, err := newLogger(settings.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLogger()

			source, _, label, err := app.openSource(cmd, settings.Source)
			if err != nil {
				return err
			}
			defer source.Close()

			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			queue := application.NewQueue()
			store := application.NewStore()
			ingestor := application.NewIngestor(source, queue, app.clock, settings.Ingest.SleepPause, logger)

			done := make(chan error, 1)
			go func() {
				done <- ingestor.Run(ctx)
			}()

			// A device read can block past the deadline; stop waiting for it.
			select {
			case err = <-done:
				if err != nil {
					return fmt.Errorf("capture from %s: %w", label, err)
				}
			case <-ctx.Done():
			}

			store.MergeAll(queue.Drain())

			stats := ingestor.Stats()
			logger.Debug().
				Str("source", label).
				Uint64("lines", stats.Lines).
				Uint64("records", stats.Records).
				Uint64("skipped", stats.Skipped).
				Uint64("read_errors", stats.ReadErrors).
				Int("tracked", store.Len()).
				Msg("capture finished")

			if err := exportSnapshot(cmd.OutOrStdout(), settings.Snapshot, store, logger); err != nil {
				return err
			}

			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long, 0 reads until the source ends")

	return cmd
}
