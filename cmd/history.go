package cmd

import (
	"fmt"
	"time"

	"github.com/KostasZigo/gitgraph/internal/constants"
	"github.com/KostasZigo/gitgraph/internal/graph"
	"github.com/KostasZigo/gitgraph/internal/refs"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <since-date>",
	Short: "Graph the first-parent ancestry of HEAD since a date",
	Long: `Resolve the repository's HEAD and walk the first-parent chain down to the
root commit, selecting commits committed at or after the given date.
Merge side branches are never entered.

Examples:
  # Primary ancestry committed since 2024-01-01
  gitgraph history 2024-01-01 -r /path/to/repo -o graph.dot`,
	SilenceUsage: true,
	Args:         exactArgs(1, "since-date YYYY-MM-DD"),
	RunE:         runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cutoff, err := parseCutoffDate(args[0])
	if err != nil {
		return err
	}

	return runPipeline(cmd, cfg, func(builder *graph.Builder) (*graph.CommitGraph, error) {
		head, err := refs.ResolveHead(cfg.RepoPath)
		if err != nil {
			return nil, err
		}
		return builder.SinceDate(head, cutoff)
	})
}

// parseCutoffDate parses a YYYY-MM-DD cutoff as midnight UTC.
func parseCutoffDate(value string) (time.Time, error) {
	cutoff, err := time.ParseInLocation(constants.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cutoff date %q (expected YYYY-MM-DD)", value)
	}
	return cutoff, nil
}
