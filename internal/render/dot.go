package render

import (
	"fmt"
	"strings"

	"github.com/KostasZigo/gitgraph/internal/graph"
)

// DOT renders a Graphviz digraph. Each commit becomes one node
// declaration followed by one "commit -> parent" edge per parent:
// the dependency direction, a commit depends on its ancestors.
type DOT struct {
	Label LabelFunc
}

func (r *DOT) Render(g *graph.CommitGraph) string {
	lines := []string{
		"digraph G {",
		"    node [shape=box, fontsize=10];",
	}

	for _, node := range g.Nodes() {
		lines = append(lines, fmt.Sprintf("    %q [label=%q];", node.Hash, r.Label(node.Hash)))
		for _, parent := range node.Parents {
			lines = append(lines, fmt.Sprintf("    %q -> %q;", node.Hash, parent))
		}
	}

	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}
