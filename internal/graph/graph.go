// Package graph selects commits from an object store and assembles their
// parent/child adjacency.
package graph

import "errors"

// ErrNoCommits means a selection policy matched nothing. Callers report it
// and exit cleanly; an empty result is not a crash.
var ErrNoCommits = errors.New("no commits matched the selection criteria")

// Node is one selected commit and its ordered parent hashes. The first
// parent is the primary ancestry line.
type Node struct {
	Hash    string
	Parents []string
}

// CommitGraph is an ordered adjacency structure mapping each selected
// commit to its parents. Parents may reference hashes that are not
// themselves nodes (ancestors outside the selected set); renderers must
// tolerate such dangling edges.
type CommitGraph struct {
	nodes []Node
	index map[string]int
}

func NewCommitGraph() *CommitGraph {
	return &CommitGraph{
		index: make(map[string]int),
	}
}

// Add appends a commit with its ordered parent list. Re-adding a hash
// replaces its parents but keeps its position.
func (g *CommitGraph) Add(hash string, parents []string) {
	if i, ok := g.index[hash]; ok {
		g.nodes[i].Parents = parents
		return
	}
	g.index[hash] = len(g.nodes)
	g.nodes = append(g.nodes, Node{Hash: hash, Parents: parents})
}

// Nodes returns the selected commits in insertion order.
func (g *CommitGraph) Nodes() []Node {
	return g.nodes
}

// Parents returns the parent list for hash, or nil if hash is not a node.
func (g *CommitGraph) Parents(hash string) []string {
	if i, ok := g.index[hash]; ok {
		return g.nodes[i].Parents
	}
	return nil
}

func (g *CommitGraph) Len() int {
	return len(g.nodes)
}

func (g *CommitGraph) Empty() bool {
	return len(g.nodes) == 0
}
