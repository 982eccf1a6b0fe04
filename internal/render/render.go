// Package render serializes a CommitGraph into a textual graph grammar.
// Renderers only produce text; writing it anywhere is the caller's job.
package render

import "github.com/KostasZigo/gitgraph/internal/graph"

// LabelFunc formats a commit hash into a node label.
type LabelFunc func(hash string) string

// FullLabel uses the complete hash as the label.
func FullLabel(hash string) string {
	return hash
}

// ShortLabel abbreviates to the conventional 7-character prefix.
func ShortLabel(hash string) string {
	if len(hash) < 7 {
		return hash
	}
	return hash[:7]
}

// Renderer turns a commit graph into one text block.
type Renderer interface {
	Render(g *graph.CommitGraph) string
}

// Format names an output grammar.
type Format string

const (
	FormatDOT      Format = "dot"
	FormatPlantUML Format = "plantuml"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatDOT, FormatPlantUML:
		return true
	default:
		return false
	}
}

// New returns the renderer for a format. Label defaults to FullLabel
// when nil.
func New(format Format, label LabelFunc) Renderer {
	if label == nil {
		label = FullLabel
	}
	switch format {
	case FormatPlantUML:
		return &PlantUML{Label: label}
	default:
		return &DOT{Label: label}
	}
}
