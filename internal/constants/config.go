package constants

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	FilesCmdName    = "files"
	HistoryCmdName  = "history"
	SnapshotCmdName = "snapshot"
)

// Repository directory and file names define the git metadata structure
// gitgraph reads. The tool never creates or modifies any of these.
const (
	// GitDir is the repository metadata directory.
	GitDir = ".git"

	// Objects stores content-addressable objects (blobs, trees, commits).
	Objects = "objects"

	// Refs contains branch and tag references.
	Refs = "refs"

	// Heads stores branch pointers under refs/.
	Heads = "heads"

	// Head points to current branch or detached commit.
	Head = "HEAD"

	// SymRefPrefix marks a symbolic reference in the HEAD file.
	SymRefPrefix = "ref:"
)

// Cryptographic hash properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40

	// HashDirPrefixLength is subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2
)

// Commit metadata keys found in commit object header lines.
const (
	CommitTreeKey      = "tree"
	CommitParentKey    = "parent"
	CommitAuthorKey    = "author"
	CommitCommitterKey = "committer"
)

// Object format constants.
const (
	// NullByte separates header from content in git objects.
	NullByte = '\x00'
)

// DateLayout is the accepted format for cutoff date flags (UTC).
const DateLayout = "2006-01-02"
