package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/canalyzer/internal/adapters/config"
	"github.com/bnema/canalyzer/internal/application"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(wireApp())
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "canalyzer",
		Short: "Live terminal viewer for ID-tagged diagnostic lines",
		Long: "canalyzer reads lines of the form \"ID: <id> <skip> <payload>\" from a serial device or stdin " +
			"and shows one row per id with its recent values, highlighting the characters that changed. " +
			"On quit it prints a snapshot of everything it saw.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewer(cmd, app)
		},
	}

	registerFlags(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newCaptureCmd(app),
		newInspectCmd(),
	)

	return rootCmd
}

func registerFlags(rootCmd *cobra.Command) {
	defaults := application.DefaultSettings()
	flags := rootCmd.PersistentFlags()

	flags.String(config.FlagConfig, "", "config file (default $XDG_CONFIG_HOME/canalyzer/config.toml)")
	flags.String("source", string(defaults.Source.Mode), "line source: auto, device or stdin")
	flags.String("device", defaults.Source.Device, "serial device to read from")
	flags.Int("baud", defaults.Source.Baud, "serial line speed, 0 leaves the device configuration untouched")
	flags.Duration("sleep-pause", defaults.Ingest.SleepPause, "pause after a \"sleep\" line")
	flags.Duration("poll-interval", defaults.UI.PollInterval, "how often the viewer merges queued records")
	flags.Int("column-width", defaults.UI.ColumnWidth, "width of each history column")
	flags.Int("id-width", defaults.UI.IDWidth, "width of the id column")
	flags.String("format", string(defaults.Snapshot.Format), "snapshot format: json or toml")
	flags.StringP("output", "o", "", "write the snapshot to this file instead of stdout")
	flags.String("log-file", "", "append JSON logs to this file")
	flags.String("log-level", defaults.Log.Level, "log level: trace, debug, info, warn or error")
}
