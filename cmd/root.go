package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the gitgraph CLI.
// All subcommands (files, history, snapshot) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gitgraph",
	Short: "Commit dependency graph visualizer for Git repositories",
	Long: `GitGraph reads a Git repository's loose object store directly, without the
git binary, reconstructs commit ancestry and emits the dependency graph as
Graphviz DOT or PlantUML text for external rendering.`,
}

// Flag values shared by all subcommands. Config file values fill in
// whatever the user did not set explicitly.
var (
	configPath  string
	repoPath    string
	outputPath  string
	formatName  string
	imagePath   string
	shortLabels bool
)

func init() {
	registerGlobalFlags(rootCmd)
}

// registerGlobalFlags attaches the shared flag set to a root command.
// Split out so tests can build fresh roots with the same flags.
func registerGlobalFlags(cmd *cobra.Command) {
	persistentFlags := cmd.PersistentFlags()
	persistentFlags.StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	persistentFlags.StringVarP(&repoPath, "repo", "r", ".", "Path to the Git repository to analyze")
	persistentFlags.StringVarP(&outputPath, "output", "o", "", "Graph text artifact destination (stdout if omitted)")
	persistentFlags.StringVarP(&formatName, "format", "f", "dot", "Output format (dot, plantuml)")
	persistentFlags.StringVar(&imagePath, "image", "", "Render the artifact to this PNG with the external renderer")
	persistentFlags.BoolVar(&shortLabels, "short", false, "Abbreviate node labels to 7-character hashes")
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
