package utils

import (
	"crypto/sha1"
	"fmt"
	"regexp"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
	TagObjectType    ObjectType = "tag"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType, TagObjectType:
		return true
	default:
		return false
	}
}

// ComputeHash calculates the SHA-1 content hash for an object payload.
// The hash covers the full stored form "<type> <size>\0<payload>".
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	header := fmt.Sprintf("%v %d\x00", objectType, len(content))
	data := append([]byte(header), content...)
	hash := sha1.Sum(data)
	return fmt.Sprintf("%x", hash), nil
}

var hexHashPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// IsHexHash reports whether s is a full lowercase 40-character SHA-1 hash.
func IsHexHash(s string) bool {
	return hexHashPattern.MatchString(s)
}
