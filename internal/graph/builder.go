package graph

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/KostasZigo/gitgraph/internal/objects"
	"github.com/KostasZigo/gitgraph/utils"
)

// Builder runs selection policies over one object store. All policies
// share the same store and parser; they differ only in traversal.
type Builder struct {
	store *objects.Store
}

func NewBuilder(store *objects.Store) *Builder {
	return &Builder{
		store: store,
	}
}

// ByTreeFilter scans every object in the store and selects the commits
// whose tree hash contains target as a substring.
//
// Known limitation: the match is against the tree *hash*, not the tree's
// file listing, so it cannot find "commits touching file X" in any real
// sense. The behavior is kept as-is rather than silently replaced with a
// tree-contents walk.
func (b *Builder) ByTreeFilter(target string) (*CommitGraph, error) {
	commits := b.scanCommits()

	var selected []*objects.CommitRecord
	for _, commit := range commits {
		if strings.Contains(commit.TreeHash, target) {
			selected = append(selected, commit)
		}
	}

	sortByCommitterDate(selected)
	return buildGraph(selected)
}

// SinceDate walks the first-parent chain from head and selects commits
// whose committer timestamp is at or after cutoff. The walk follows only
// primary ancestry (merge side branches are never entered) and continues
// past older commits until it reaches a root.
//
// Unlike the scan policies, every object on the chain is required: any
// read or parse failure aborts the walk.
func (b *Builder) SinceDate(head string, cutoff time.Time) (*CommitGraph, error) {
	var selected []*objects.CommitRecord

	for hash := head; hash != ""; {
		objType, payload, err := b.store.Read(hash)
		if err != nil {
			return nil, fmt.Errorf("ancestry walk failed at %s: %w", hash, err)
		}
		if objType != utils.CommitObjectType {
			return nil, fmt.Errorf("ancestry walk failed at %s: object is a %s, not a commit", hash, objType)
		}

		commit, err := objects.ParseCommit(hash, payload)
		if err != nil {
			return nil, fmt.Errorf("ancestry walk failed at %s: %w", hash, err)
		}
		if commit.Committer == nil {
			return nil, fmt.Errorf("ancestry walk failed at %s: %w: no committer line", hash, objects.ErrMalformedCommit)
		}

		if !commit.Committer.Timestamp.Before(cutoff) {
			selected = append(selected, commit)
		}

		hash = commit.FirstParent()
	}

	sortByCommitterDate(selected)
	return buildGraph(selected)
}

// UntilDate scans every commit in the store and selects those whose
// author timestamp is at or before cutoff, regardless of whether any
// branch still reaches them. This is a global filter: near merge points
// it disagrees with SinceDate by design, so the two stay separate modes.
func (b *Builder) UntilDate(cutoff time.Time) (*CommitGraph, error) {
	commits := b.scanCommits()

	var selected []*objects.CommitRecord
	for _, commit := range commits {
		if commit.Author == nil {
			slog.Warn("Skipping commit without author line",
				"hash", commit.Hash)
			continue
		}
		if !commit.Author.Timestamp.After(cutoff) {
			selected = append(selected, commit)
		}
	}

	sortByAuthorDate(selected)
	return buildGraph(selected)
}

// scanCommits enumerates the whole store and parses every commit object.
// Per-object failures (corrupt entries, binary payloads, malformed
// commits) are logged and skipped; a bulk scan must survive them.
func (b *Builder) scanCommits() []*objects.CommitRecord {
	var commits []*objects.CommitRecord

	for hash := range b.store.List() {
		objType, payload, err := b.store.Read(hash)
		if err != nil {
			slog.Warn("Skipping unreadable object",
				"hash", hash,
				"error", err)
			continue
		}
		if objType != utils.CommitObjectType {
			continue
		}

		commit, err := objects.ParseCommit(hash, payload)
		if err != nil {
			slog.Warn("Skipping undecodable commit object",
				"hash", hash,
				"error", err)
			continue
		}

		commits = append(commits, commit)
	}

	return commits
}

// buildGraph assembles the adjacency structure for the selected commits.
func buildGraph(selected []*objects.CommitRecord) (*CommitGraph, error) {
	if len(selected) == 0 {
		return nil, ErrNoCommits
	}

	commitGraph := NewCommitGraph()
	for _, commit := range selected {
		commitGraph.Add(commit.Hash, commit.ParentHashes)
	}
	return commitGraph, nil
}

// Output ordering is ascending by timestamp; equal timestamps keep
// encounter order (stable sort). Commits missing the signature sort
// first with the zero timestamp.

func sortByCommitterDate(commits []*objects.CommitRecord) {
	sort.SliceStable(commits, func(i, j int) bool {
		return signatureTime(commits[i].Committer).Before(signatureTime(commits[j].Committer))
	})
}

func sortByAuthorDate(commits []*objects.CommitRecord) {
	sort.SliceStable(commits, func(i, j int) bool {
		return signatureTime(commits[i].Author).Before(signatureTime(commits[j].Author))
	})
}

func signatureTime(s *objects.Signature) time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.Timestamp
}
