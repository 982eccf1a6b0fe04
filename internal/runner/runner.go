// Package runner invokes an external rendering program on a graph text
// artifact. The call is opaque: gitgraph hands over file paths and only
// inspects the exit status.
package runner

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/KostasZigo/gitgraph/internal/render"
)

// Tool holds the external renderer configuration.
type Tool struct {
	// DotBinary renders DOT artifacts. Defaults to "dot" on PATH.
	DotBinary string

	// JavaBinary runs the PlantUML jar. Defaults to "java" on PATH.
	JavaBinary string

	// PlantUMLJar is the path to plantuml.jar, required for PlantUML
	// artifacts.
	PlantUMLJar string
}

// RenderImage renders artifactPath into a PNG at imagePath using the
// program matching format. A non-zero exit is returned as an error
// carrying the program's output.
func (t *Tool) RenderImage(format render.Format, artifactPath, imagePath string) error {
	switch format {
	case render.FormatPlantUML:
		return t.renderPlantUML(artifactPath, imagePath)
	default:
		return t.renderDot(artifactPath, imagePath)
	}
}

func (t *Tool) renderDot(artifactPath, imagePath string) error {
	binary := t.DotBinary
	if binary == "" {
		binary = "dot"
	}

	output, err := run(binary, "-Tpng", artifactPath, "-o", imagePath)
	if err != nil {
		return fmt.Errorf("dot failed for %s: %w: %s", artifactPath, err, output)
	}
	return nil
}

// renderPlantUML runs the jar, which writes the image next to the
// artifact, then moves it to the requested destination.
func (t *Tool) renderPlantUML(artifactPath, imagePath string) error {
	if t.PlantUMLJar == "" {
		return fmt.Errorf("plantuml jar path is not configured")
	}

	binary := t.JavaBinary
	if binary == "" {
		binary = "java"
	}

	output, err := run(binary, "-jar", t.PlantUMLJar, artifactPath, "-tpng", "-o", filepath.Dir(imagePath))
	if err != nil {
		return fmt.Errorf("plantuml failed for %s: %w: %s", artifactPath, err, output)
	}

	generated := filepath.Join(filepath.Dir(imagePath), replaceExt(filepath.Base(artifactPath), ".png"))
	if generated == imagePath {
		return nil
	}
	if err := os.Rename(generated, imagePath); err != nil {
		return fmt.Errorf("failed to move rendered image to %s: %w", imagePath, err)
	}
	return nil
}

// run executes the program and returns its combined output.
func run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

func replaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
