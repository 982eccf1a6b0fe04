package testutils

import (
	"bytes"
	"compress/zlib"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/gitgraph/internal/constants"
	"github.com/KostasZigo/gitgraph/utils"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepo creates a temporary directory with a .git/objects and
// refs/heads structure plus a HEAD pointing at refs/heads/main.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	gitDir := filepath.Join(repoPath, constants.GitDir)

	dirs := []string{
		filepath.Join(gitDir, constants.Objects),
		filepath.Join(gitDir, constants.Refs, constants.Heads),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	headPath := filepath.Join(gitDir, constants.Head)
	headContent := []byte("ref: refs/heads/main\n")
	if err := os.WriteFile(headPath, headContent, 0644); err != nil {
		t.Fatalf("Failed to create %s file: %v", constants.Head, err)
	}

	return repoPath
}

// SetBranch writes a branch pointer file under refs/heads.
func SetBranch(t *testing.T, repoPath, branch, hash string) {
	t.Helper()

	refPath := filepath.Join(repoPath, constants.GitDir, constants.Refs, constants.Heads, branch)
	if err := os.WriteFile(refPath, []byte(hash+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write branch ref %s: %v", branch, err)
	}
}

// SetDetachedHead overwrites HEAD with a literal commit hash.
func SetDetachedHead(t *testing.T, repoPath, hash string) {
	t.Helper()

	headPath := filepath.Join(repoPath, constants.GitDir, constants.Head)
	if err := os.WriteFile(headPath, []byte(hash+"\n"), 0644); err != nil {
		t.Fatalf("Failed to write detached HEAD: %v", err)
	}
}

// WriteLooseObject stores content as a zlib-compressed loose object of the
// given type and returns its content hash.
func WriteLooseObject(t *testing.T, repoPath string, objType utils.ObjectType, content []byte) string {
	t.Helper()

	hash, err := utils.ComputeHash(content, objType)
	if err != nil {
		t.Fatalf("Failed to compute object hash: %v", err)
	}

	stored := append([]byte(fmt.Sprintf("%s %d\x00", objType, len(content))), content...)
	WriteRawObject(t, repoPath, hash, compress(t, stored))
	return hash
}

// WriteRawObject writes already-prepared bytes to the loose-object path
// derived from hash. Used directly for corrupt-object fixtures.
func WriteRawObject(t *testing.T, repoPath, hash string, data []byte) {
	t.Helper()

	objectDir := filepath.Join(repoPath, constants.GitDir, constants.Objects,
		hash[:constants.HashDirPrefixLength])
	if err := os.MkdirAll(objectDir, 0755); err != nil {
		t.Fatalf("Failed to create object directory: %v", err)
	}

	objectFile := filepath.Join(objectDir, hash[constants.HashDirPrefixLength:])
	if err := os.WriteFile(objectFile, data, 0644); err != nil {
		t.Fatalf("Failed to write object file: %v", err)
	}
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("Failed to compress object data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to flush compressed object data: %v", err)
	}
	return buffer.Bytes()
}

// CommitSpec describes a synthetic commit object for fixtures.
type CommitSpec struct {
	TreeHash    string
	Parents     []string
	AuthorTime  int64
	CommitTime  int64
	AuthorName  string
	CommitName  string
	AuthorEmail string
	CommitEmail string
	Message     string
}

// BuildCommitPayload serializes a CommitSpec into the commit object text
// grammar: header lines, blank line, message.
func BuildCommitPayload(spec CommitSpec) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "tree %s\n", spec.TreeHash)
	for _, parent := range spec.Parents {
		fmt.Fprintf(&buf, "parent %s\n", parent)
	}

	authorName := orDefault(spec.AuthorName, "Test Author")
	authorEmail := orDefault(spec.AuthorEmail, "author@example.com")
	fmt.Fprintf(&buf, "author %s <%s> %d +0000\n", authorName, authorEmail, spec.AuthorTime)

	commitName := orDefault(spec.CommitName, "Test Committer")
	commitEmail := orDefault(spec.CommitEmail, "committer@example.com")
	fmt.Fprintf(&buf, "committer %s <%s> %d +0000\n", commitName, commitEmail, spec.CommitTime)

	buf.WriteByte('\n')
	buf.WriteString(orDefault(spec.Message, "test commit\n"))

	return buf.Bytes()
}

// WriteCommit stores a synthetic commit object and returns its hash.
func WriteCommit(t *testing.T, repoPath string, spec CommitSpec) string {
	t.Helper()
	return WriteLooseObject(t, repoPath, utils.CommitObjectType, BuildCommitPayload(spec))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
// Fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}
