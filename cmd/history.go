package cmd

import (
	"fmt"

	"github.com/khanhnv2901/arch-health/internal/history"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show summaries of previous runs recorded with --history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		path, err := getHistoryFilePath()
		if err != nil {
			return err
		}
		records, err := history.Load(path, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No runs recorded yet. Enable with --history or output.history = true.")
			return nil
		}

		for _, rec := range records {
			state := "healthy"
			if !rec.Healthy() {
				state = "issues"
			}
			fmt.Fprintf(out, "%s  %s  %s  files: %d/%d with issues (%d missing deps, %d unprobed)  checks: %d with issues  (%.1fs)\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				shortID(rec.RunID),
				colorState(state),
				rec.FilesWithIssues, rec.FilesScanned,
				rec.FilesMissingDeps, rec.ProbeFailures,
				rec.ChecksWithIssues,
				rec.DurationSeconds)
		}
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "number of most recent runs to show (0 = all)")
}
