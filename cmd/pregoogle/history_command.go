package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pregoogle/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent title outcomes from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return errors.New("journal is disabled (set journal.enabled = true)")
			}
			store, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No outcomes recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Recorded", "Outcome", "File", "Title"},
				historyRows(entries),
				1,
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", journal.DefaultRecentLimit, "Number of entries to show")
	return cmd
}

func historyRows(entries []journal.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		recorded := ""
		if !entry.RecordedAt.IsZero() {
			recorded = entry.RecordedAt.Local().Format("2006-01-02 15:04:05")
		}
		title := entry.Title
		if title == "" && entry.Detail != "" {
			title = entry.Detail
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", entry.ID),
			recorded,
			entry.Outcome,
			entry.Path,
			truncate(title, 60),
		})
	}
	return rows
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-1]) + "…"
}
