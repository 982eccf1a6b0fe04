// Package config provides configuration types and defaults for gitgraph.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = "gitgraph.yaml"

// Config holds file-level defaults for gitgraph. Command-line flags
// always win over config file values.
type Config struct {
	// RepoPath is the repository to analyze.
	RepoPath string `mapstructure:"repo_path"`

	// Output is the graph text artifact destination.
	Output string `mapstructure:"output"`

	// Format selects the output grammar ("dot" or "plantuml").
	Format string `mapstructure:"format"`

	// ShortLabels abbreviates node labels to 7-character hashes.
	ShortLabels bool `mapstructure:"short_labels"`

	Renderer RendererConfig `mapstructure:"renderer"`
}

// RendererConfig configures the external rendering programs.
type RendererConfig struct {
	// Image is the rendered image destination; empty disables rendering.
	Image string `mapstructure:"image"`

	// DotBinary overrides the Graphviz binary ("dot" by default).
	DotBinary string `mapstructure:"dot_binary"`

	// JavaBinary overrides the JVM used to run PlantUML ("java" by default).
	JavaBinary string `mapstructure:"java_binary"`

	// PlantUMLJar is the path to plantuml.jar.
	PlantUMLJar string `mapstructure:"plantuml_jar"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		RepoPath: ".",
		Format:   "dot",
	}
}

// Load reads configuration from path. An empty path means the default
// file name in the working directory, and a missing default file is not
// an error; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
