package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kakezan/internal/store"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Print recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		entries, err := s.EventRepo().Recent(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		var rows [][]string
		for _, e := range entries {
			if kind != "" && e.Kind != kind {
				continue
			}
			rows = append(rows, []string{
				strconv.FormatInt(e.Sequence, 10),
				stamp(e.Timestamp),
				e.Kind,
				truncate(e.SessionID, 8),
				e.Summary,
			})
		}
		if len(rows) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No journal entries found.")
			return nil
		}
		printTable(cmd.OutOrStdout(), []string{"Seq", "Time", "Kind", "Session", "Summary"}, rows)
		return nil
	},
}

func init() {
	journalCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	journalCmd.Flags().StringP("kind", "k", "", "Only this kind: session, answer, hint, playback or llm")
	journalCmd.Flags().Duration("since", 0, "Only entries newer than this (e.g. 24h)")
}
