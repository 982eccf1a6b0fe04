package cmd

import (
	"github.com/KostasZigo/gitgraph/internal/graph"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files <target>",
	Short: "Graph commits whose tree reference contains the target string",
	Long: `Scan every object in the store and select the commits whose tree hash
contains the target string.

Known limitation: the match runs against the tree hash itself, not the
tree's file listing, so it cannot find commits touching a file by name.

Examples:
  # Commits whose tree hash contains "aaa", as DOT on stdout
  gitgraph files aaa -r /path/to/repo

  # Same selection written as PlantUML
  gitgraph files aaa -r /path/to/repo -f plantuml -o graph.puml`,
	SilenceUsage: true,
	Args:         exactArgs(1, "target string"),
	RunE:         runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	return runPipeline(cmd, cfg, func(builder *graph.Builder) (*graph.CommitGraph, error) {
		return builder.ByTreeFilter(args[0])
	})
}
