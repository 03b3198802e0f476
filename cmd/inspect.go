package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/bnema/canalyzer/internal/adapters/snapshot"
	"github.com/bnema/canalyzer/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <snapshot-file>",
		Short: "Summarize a saved snapshot",
		Long:  "inspect decodes a JSON or TOML snapshot (picked by file extension) and prints one line per id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := snapshot.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}

			return writeSummary(cmd.OutOrStdout(), messages)
		},
	}
}

var (
	summaryHeader = lipgloss.NewStyle().Bold(true)
	summaryFlag   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func writeSummary(w io.Writer, messages []domain.TrackedMessage) error {
	if _, err := fmt.Fprintln(w, summaryHeader.Render(fmt.Sprintf("ids: %d", len(messages)))); err != nil {
		return err
	}

	idWidth := 2
	for _, msg := range messages {
		idWidth = max(idWidth, len(msg.ID))
	}

	for _, msg := range messages {
		latest := msg.Latest()
		line := fmt.Sprintf("%-*s  values: %-3d  last: %s  %q",
			idWidth, msg.ID, len(msg.History), latest.ObservedAt.UTC().Format(time.RFC3339Nano), latest.Payload)
		if flags := summaryFlags(msg); flags != "" {
			line += "  " + summaryFlag.Render(flags)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func summaryFlags(msg domain.TrackedMessage) string {
	switch {
	case msg.Pinned && msg.Ignored:
		return "[pinned, ignored]"
	case msg.Pinned:
		return "[pinned]"
	case msg.Ignored:
		return "[ignored]"
	default:
		return ""
	}
}
