package objects

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gitgraph/internal/constants"
	"github.com/KostasZigo/gitgraph/utils"
)

var objectsRelativeFilePath = filepath.Join(constants.GitDir, constants.Objects)

// Decompressor expands a raw loose-object file into its stored form.
// Injected so tests can substitute fixed payloads without touching disk
// formats or patching package state.
type Decompressor interface {
	Decompress(compressed []byte) ([]byte, error)
}

// ZlibDecompressor is the production Decompressor. Loose objects are
// individually zlib-compressed, the only storage form gitgraph supports
// (no packfiles, no deltas).
type ZlibDecompressor struct{}

func (ZlibDecompressor) Decompress(compressed []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(reader); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Store reads loose objects from a repository's .git/objects tree.
// It never writes: the object store is read-only input.
type Store struct {
	repoPath     string // Path to repository root
	decompressor Decompressor
}

func NewStore(repoPath string) *Store {
	return NewStoreWithDecompressor(repoPath, ZlibDecompressor{})
}

func NewStoreWithDecompressor(repoPath string, d Decompressor) *Store {
	return &Store{
		repoPath:     repoPath,
		decompressor: d,
	}
}

// List lazily enumerates every loose object hash in the store, one per
// file whose directory-prefix plus file-name length matches a full hash.
// Order is directory-walk order; callers wanting determinism must sort.
// Walk errors on individual entries are logged and skipped.
func (store *Store) List() iter.Seq[string] {
	objectsDir := filepath.Join(store.repoPath, objectsRelativeFilePath)

	return func(yield func(string) bool) {
		err := filepath.WalkDir(objectsDir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				slog.Warn("Skipping unreadable object store entry",
					"path", path,
					"error", err)
				return nil
			}
			if entry.IsDir() {
				return nil
			}

			dir := filepath.Base(filepath.Dir(path))
			name := entry.Name()
			if len(dir) != constants.HashDirPrefixLength ||
				len(dir)+len(name) != constants.HashStringLength {
				return nil
			}

			if !yield(dir + name) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			slog.Warn("Object store walk aborted",
				"dir", objectsDir,
				"error", err)
		}
	}
}

// Read locates a loose object by hash, decompresses it and splits off the
// "<type> <length>\0" header. Returns ErrObjectNotFound for hashes that
// are not full 40-character hex strings (no object path can be derived,
// e.g. a truncated parent line) or when no file exists at the derived
// path, and ErrCorruptObject on decompression or header failures.
func (store *Store) Read(hash string) (utils.ObjectType, []byte, error) {
	if !utils.IsHexHash(hash) {
		return "", nil, fmt.Errorf("%w: invalid object hash %q", ErrObjectNotFound, hash)
	}

	objectFile := filepath.Join(store.repoPath, objectsRelativeFilePath,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])

	compressedData, err := os.ReadFile(objectFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, fmt.Errorf("%w: %s", ErrObjectNotFound, hash)
		}
		return "", nil, fmt.Errorf("failed to read object file %s: %w", hash, err)
	}

	data, err := store.decompressor.Decompress(compressedData)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrCorruptObject, hash, err)
	}

	header, payload, err := splitHeader(data)
	if err != nil {
		return "", nil, fmt.Errorf("object %s: %w", hash, err)
	}

	return header.Type, payload, nil
}
