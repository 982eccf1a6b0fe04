package objects

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KostasZigo/gitgraph/internal/constants"
)

// Signature identifies the person behind an author or committer line.
type Signature struct {
	Name      string
	Email     string
	Timestamp time.Time
}

func (s Signature) String() string {
	return fmt.Sprintf("%s <%s>",
		s.Name,
		s.Email)
}

// CommitRecord is the decoded form of one commit object. Immutable after
// parsing. Author and Committer are nil when the corresponding header line
// is absent; absence is a valid state, not an error.
type CommitRecord struct {
	Hash         string
	TreeHash     string
	ParentHashes []string
	Author       *Signature
	Committer    *Signature
	Message      string
}

// IsRoot reports whether the commit has no parents.
func (c *CommitRecord) IsRoot() bool {
	return len(c.ParentHashes) == 0
}

// FirstParent returns the primary ancestry parent, or "" for a root commit.
func (c *CommitRecord) FirstParent() string {
	if c.IsRoot() {
		return ""
	}
	return c.ParentHashes[0]
}

func (c *CommitRecord) String() string {
	return fmt.Sprintf("Commit{hash: %s, tree: %s, parents: %v, message: %q}",
		c.Hash, c.TreeHash, c.ParentHashes, c.Message)
}

// ParseCommit decodes a commit object payload into a CommitRecord.
//
// The payload is "<key> <value>" header lines terminated by a blank line,
// then the free-text message. Parent lines keep file order: the first
// parent is the primary ancestry line. Unrecognized keys are ignored so
// newer header lines (gpgsig, encoding, ...) do not break parsing.
//
// Returns ErrEncoding for non-UTF-8 payloads (routine during full-store
// scans, where tree and blob objects show up too) and ErrMalformedCommit
// when the required tree line is missing.
func ParseCommit(hash string, payload []byte) (*CommitRecord, error) {
	if !utf8.Valid(payload) {
		return nil, fmt.Errorf("%w: object %s", ErrEncoding, hash)
	}

	commit := &CommitRecord{Hash: hash}

	lines := strings.Split(string(payload), "\n")
	for i, line := range lines {
		if line == "" {
			// Blank separator: the rest is the message body.
			commit.Message = strings.Join(lines[i+1:], "\n")
			break
		}

		key, value, found := strings.Cut(line, " ")
		if !found {
			continue
		}

		switch key {
		case constants.CommitTreeKey:
			commit.TreeHash = value
		case constants.CommitParentKey:
			commit.ParentHashes = append(commit.ParentHashes, value)
		case constants.CommitAuthorKey:
			commit.Author = parseSignature(value)
		case constants.CommitCommitterKey:
			commit.Committer = parseSignature(value)
		}
	}

	if commit.TreeHash == "" {
		return nil, fmt.Errorf("%w: object %s has no tree line", ErrMalformedCommit, hash)
	}

	return commit, nil
}

// parseSignature decodes "Name Parts <email> <unix-timestamp> <tz>".
// Fields are positional: the second-to-last token is the timestamp, the
// token before it the email, everything earlier the name. Returns nil when
// the line has too few fields to carry a timestamp.
func parseSignature(value string) *Signature {
	fields := strings.Fields(value)
	if len(fields) < 3 {
		return nil
	}

	unixTimestamp, err := strconv.ParseInt(fields[len(fields)-2], 10, 64)
	if err != nil {
		return nil
	}

	email := strings.Trim(fields[len(fields)-3], "<>")
	name := strings.Join(fields[:len(fields)-3], " ")

	return &Signature{
		Name:      name,
		Email:     email,
		Timestamp: time.Unix(unixTimestamp, 0).UTC(),
	}
}
