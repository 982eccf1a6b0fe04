package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/KostasZigo/gitgraph/config"
	"github.com/KostasZigo/gitgraph/internal/graph"
	"github.com/KostasZigo/gitgraph/internal/objects"
	"github.com/KostasZigo/gitgraph/internal/refs"
	"github.com/KostasZigo/gitgraph/internal/render"
	"github.com/KostasZigo/gitgraph/internal/runner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen)
	noticeColor  = color.New(color.FgYellow)
)

// resolveConfig merges the config file with command-line flags.
// Flags set explicitly on the command line win over file values.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("repo") || cfg.RepoPath == "" {
		cfg.RepoPath = repoPath
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("format") || cfg.Format == "" {
		cfg.Format = formatName
	}
	if flags.Changed("image") {
		cfg.Renderer.Image = imagePath
	}
	if flags.Changed("short") {
		cfg.ShortLabels = shortLabels
	}

	if !render.Format(cfg.Format).IsValid() {
		return cfg, fmt.Errorf("unknown output format %q (expected dot or plantuml)", cfg.Format)
	}

	return cfg, nil
}

// selectionFunc runs one selection policy against a graph builder.
type selectionFunc func(builder *graph.Builder) (*graph.CommitGraph, error)

// runPipeline is the shared command body: validate the repository, run
// the selection policy, render, write the artifact and optionally invoke
// the external renderer. An empty selection is reported and exits clean.
func runPipeline(cmd *cobra.Command, cfg config.Config, selection selectionFunc) error {
	if err := refs.Validate(cfg.RepoPath); err != nil {
		return err
	}

	builder := newBuilder(cfg.RepoPath)
	commitGraph, err := selection(builder)
	if err != nil {
		if errors.Is(err, graph.ErrNoCommits) {
			noticeColor.Fprintln(cmd.OutOrStdout(), err.Error())
			return nil
		}
		return err
	}

	label := render.LabelFunc(render.FullLabel)
	if cfg.ShortLabels {
		label = render.ShortLabel
	}

	format := render.Format(cfg.Format)
	text := render.New(format, label).Render(commitGraph)

	if cfg.Output == "" {
		if cfg.Renderer.Image != "" {
			return fmt.Errorf("rendering an image requires --output for the text artifact")
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := writeArtifact(cfg.Output, text); err != nil {
		return err
	}
	successColor.Fprintf(cmd.OutOrStdout(), "Wrote %s graph with %d commits to %s\n",
		format, commitGraph.Len(), cfg.Output)

	if cfg.Renderer.Image != "" {
		tool := &runner.Tool{
			DotBinary:   cfg.Renderer.DotBinary,
			JavaBinary:  cfg.Renderer.JavaBinary,
			PlantUMLJar: cfg.Renderer.PlantUMLJar,
		}
		if err := tool.RenderImage(format, cfg.Output, cfg.Renderer.Image); err != nil {
			return err
		}
		successColor.Fprintf(cmd.OutOrStdout(), "Rendered image to %s\n", cfg.Renderer.Image)
	}

	return nil
}

// newBuilder wires the object store into a graph builder for one run.
func newBuilder(repoPath string) *graph.Builder {
	return graph.NewBuilder(objects.NewStore(repoPath))
}

// writeArtifact writes the rendered graph text to disk.
func writeArtifact(path, text string) error {
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write graph artifact: %w", err)
	}
	return nil
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (%s), received %d",
				cmd.Name(), n, what, len(args))
		}
		return nil
	}
}
