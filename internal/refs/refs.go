// Package refs validates repository paths and resolves the current branch
// pointer to a commit hash. Resolution is read-only: a HEAD file holds
// either a symbolic reference ("ref: refs/heads/main") whose target file
// contains the hash, or a literal hash for a detached HEAD.
package refs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KostasZigo/gitgraph/internal/constants"
	"github.com/KostasZigo/gitgraph/internal/objects"
	"github.com/KostasZigo/gitgraph/utils"
)

// Validate checks that repoPath contains the expected object-store
// structure. Returns ErrNotRepository otherwise; this is always fatal.
func Validate(repoPath string) error {
	objectsDir := filepath.Join(repoPath, constants.GitDir, constants.Objects)

	info, err := os.Stat(objectsDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", objects.ErrNotRepository, repoPath)
	}
	return nil
}

// ResolveHead resolves the repository's HEAD to a commit hash.
// Errors here are fatal: without a starting point no ancestry walk can run.
func ResolveHead(repoPath string) (string, error) {
	headFile := filepath.Join(repoPath, constants.GitDir, constants.Head)

	content, err := os.ReadFile(headFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", constants.Head, err)
	}

	ref := strings.TrimSpace(string(content))

	// Detached HEAD holds the hash directly.
	if !strings.HasPrefix(ref, constants.SymRefPrefix) {
		if !utils.IsHexHash(ref) {
			return "", fmt.Errorf("%s does not contain a symbolic ref or commit hash: %q", constants.Head, ref)
		}
		return ref, nil
	}

	refPath := strings.TrimSpace(strings.TrimPrefix(ref, constants.SymRefPrefix))
	return resolveRef(repoPath, refPath)
}

// resolveRef reads a branch pointer file (e.g. refs/heads/main) and
// returns the commit hash it contains.
func resolveRef(repoPath, refPath string) (string, error) {
	refFile := filepath.Join(repoPath, constants.GitDir, filepath.FromSlash(refPath))

	content, err := os.ReadFile(refFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve ref %s: %w", refPath, err)
	}

	hash := strings.TrimSpace(string(content))
	if !utils.IsHexHash(hash) {
		return "", fmt.Errorf("ref %s does not contain a commit hash: %q", refPath, hash)
	}

	return hash, nil
}
