package render

import (
	"fmt"
	"strings"

	"github.com/KostasZigo/gitgraph/internal/graph"
)

// PlantUML renders diagram markup with one edge statement per parent,
// pointing from parent to child. Every node label carries a
// monotonically increasing index so the same hash stays distinguishable
// across multiple appearances.
type PlantUML struct {
	Label LabelFunc
}

func (r *PlantUML) Render(g *graph.CommitGraph) string {
	lines := []string{"@startuml"}

	i := 1
	for _, node := range g.Nodes() {
		for _, parent := range node.Parents {
			lines = append(lines, fmt.Sprintf("\"%s (%d)\" --> \"%s (%d)\"",
				r.Label(parent), i, r.Label(node.Hash), i+1))
			i++
		}
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n")
}
