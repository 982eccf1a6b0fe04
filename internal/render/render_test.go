package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KostasZigo/gitgraph/internal/graph"
)

func TestDOT_SingleEdge(t *testing.T) {
	g := graph.NewCommitGraph()
	g.Add("C2", []string{"C1"})

	out := (&DOT{Label: FullLabel}).Render(g)
	lines := strings.Split(out, "\n")

	require.Equal(t, []string{
		"digraph G {",
		"    node [shape=box, fontsize=10];",
		`    "C2" [label="C2"];`,
		`    "C2" -> "C1";`,
		"}",
	}, lines, "node declaration precedes its edges")
}

func TestDOT_MergeCommitEdges(t *testing.T) {
	g := graph.NewCommitGraph()
	g.Add("M", []string{"P1", "P2", "P3"})

	out := (&DOT{Label: FullLabel}).Render(g)

	for _, parent := range []string{"P1", "P2", "P3"} {
		assert.Contains(t, out, `"M" -> "`+parent+`";`)
	}
	assert.Equal(t, 3, strings.Count(out, "->"), "one edge per parent line")
}

func TestDOT_RootCommitNoEdges(t *testing.T) {
	g := graph.NewCommitGraph()
	g.Add("R", nil)

	out := (&DOT{Label: FullLabel}).Render(g)

	assert.Contains(t, out, `"R" [label="R"];`)
	assert.NotContains(t, out, "->")
}

func TestDOT_EmptyGraph(t *testing.T) {
	out := (&DOT{Label: FullLabel}).Render(graph.NewCommitGraph())

	assert.Equal(t, "digraph G {\n    node [shape=box, fontsize=10];\n}", out,
		"empty graph is still a syntactically valid block")
}

// Dangling edges (parents outside the selected set) still render.
func TestDOT_DanglingParent(t *testing.T) {
	g := graph.NewCommitGraph()
	g.Add("C2", []string{"outside"})

	out := (&DOT{Label: FullLabel}).Render(g)
	assert.Contains(t, out, `"C2" -> "outside";`)
}

func TestDOT_ShortLabels(t *testing.T) {
	hash := "0123456789abcdef0123456789abcdef01234567"
	g := graph.NewCommitGraph()
	g.Add(hash, nil)

	out := (&DOT{Label: ShortLabel}).Render(g)
	assert.Contains(t, out, `"`+hash+`" [label="0123456"];`)
}

func TestPlantUML_IndexedEdges(t *testing.T) {
	g := graph.NewCommitGraph()
	g.Add("C2", []string{"C1"})
	g.Add("C3", []string{"C2", "C1"})

	out := (&PlantUML{Label: FullLabel}).Render(g)
	lines := strings.Split(out, "\n")

	require.Equal(t, []string{
		"@startuml",
		`"C1 (1)" --> "C2 (2)"`,
		`"C2 (2)" --> "C3 (3)"`,
		`"C1 (3)" --> "C3 (4)"`,
		"@enduml",
	}, lines, "edge index increases monotonically per edge, parent points to child")
}

func TestPlantUML_EmptyGraph(t *testing.T) {
	out := (&PlantUML{Label: FullLabel}).Render(graph.NewCommitGraph())
	assert.Equal(t, "@startuml\n@enduml", out)
}

func TestPlantUML_RootCommitNoEdges(t *testing.T) {
	g := graph.NewCommitGraph()
	g.Add("R", nil)

	out := (&PlantUML{Label: FullLabel}).Render(g)
	assert.Equal(t, "@startuml\n@enduml", out, "roots contribute no edge statements")
}

func TestNew_Dispatch(t *testing.T) {
	assert.IsType(t, &DOT{}, New(FormatDOT, nil))
	assert.IsType(t, &PlantUML{}, New(FormatPlantUML, nil))
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, FormatDOT.IsValid())
	assert.True(t, FormatPlantUML.IsValid())
	assert.False(t, Format("svg").IsValid())
}

func TestShortLabel_ShortInput(t *testing.T) {
	assert.Equal(t, "abc", ShortLabel("abc"))
}
