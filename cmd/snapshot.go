package cmd

import (
	"github.com/KostasZigo/gitgraph/internal/graph"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <until-date>",
	Short: "Graph every stored commit authored up to a date",
	Long: `Scan every commit object in the store and select those authored at or
before the given date, whether or not any branch still reaches them.

This is a global filter over the whole store. Near merge points it selects
a different set than the history command, which only follows the
first-parent chain from HEAD; the two modes are deliberately separate.

Examples:
  # Everything authored up to the cutoff, as PlantUML
  gitgraph snapshot 2024-06-30 -r /path/to/repo -f plantuml -o graph.puml`,
	SilenceUsage: true,
	Args:         exactArgs(1, "until-date YYYY-MM-DD"),
	RunE:         runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	cutoff, err := parseCutoffDate(args[0])
	if err != nil {
		return err
	}

	return runPipeline(cmd, cfg, func(builder *graph.Builder) (*graph.CommitGraph, error) {
		return builder.UntilDate(cutoff)
	})
}
