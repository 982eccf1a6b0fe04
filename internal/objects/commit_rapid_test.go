package objects

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/KostasZigo/gitgraph/utils"
)

// --- Generators ---

func genHash() *rapid.Generator[string] {
	return rapid.StringOfN(rapid.RuneFrom([]rune("0123456789abcdef")), 40, 40, 40)
}

func genName() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z]+( [A-Za-z]+){0,2}`)
}

// --- Property Tests ---

// Parent count and order in the raw payload must survive parsing exactly.
func TestRapidParseCommit_ParentsPreserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genHash().Draw(t, "tree")
		parents := rapid.SliceOfN(genHash(), 0, 5).Draw(t, "parents")

		var b strings.Builder
		fmt.Fprintf(&b, "tree %s\n", tree)
		for _, parent := range parents {
			fmt.Fprintf(&b, "parent %s\n", parent)
		}
		b.WriteString("\nmessage body\n")

		commit, err := ParseCommit(genHash().Draw(t, "hash"), []byte(b.String()))
		if err != nil {
			t.Fatalf("ParseCommit failed: %v", err)
		}

		if len(commit.ParentHashes) != len(parents) {
			t.Fatalf("got %d parents, want %d", len(commit.ParentHashes), len(parents))
		}
		for i, parent := range parents {
			if commit.ParentHashes[i] != parent {
				t.Fatalf("parent %d = %s, want %s", i, commit.ParentHashes[i], parent)
			}
		}
	})
}

// Signature fields are positional; arbitrary multi-word names must not
// shift the email or timestamp.
func TestRapidParseCommit_SignatureFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := genName().Draw(t, "name")
		timestamp := rapid.Int64Range(0, 1<<40).Draw(t, "timestamp")

		payload := fmt.Sprintf("tree %s\nauthor %s <dev@example.com> %d +0000\n\nx\n",
			genHash().Draw(t, "tree"), name, timestamp)

		commit, err := ParseCommit(genHash().Draw(t, "hash"), []byte(payload))
		if err != nil {
			t.Fatalf("ParseCommit failed: %v", err)
		}
		if commit.Author == nil {
			t.Fatal("author missing")
		}
		if commit.Author.Name != name {
			t.Fatalf("name = %q, want %q", commit.Author.Name, name)
		}
		if commit.Author.Email != "dev@example.com" {
			t.Fatalf("email = %q", commit.Author.Email)
		}
		if commit.Author.Timestamp.Unix() != timestamp {
			t.Fatalf("timestamp = %d, want %d", commit.Author.Timestamp.Unix(), timestamp)
		}
	})
}

// Content addressing round-trip: encoding a payload into the stored form
// and splitting it back must preserve type, payload, and hash.
func TestRapidSplitHeader_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 0, 512).Draw(t, "payload")
		objType := rapid.SampledFrom([]utils.ObjectType{
			utils.BlobObjectType, utils.TreeObjectType, utils.CommitObjectType,
		}).Draw(t, "type")

		stored := append([]byte(fmt.Sprintf("%s %d\x00", objType, len(payload))), payload...)

		header, got, err := splitHeader(stored)
		if err != nil {
			t.Fatalf("splitHeader failed: %v", err)
		}
		if header.Type != objType {
			t.Fatalf("type = %q, want %q", header.Type, objType)
		}
		if string(got) != string(payload) {
			t.Fatalf("payload mismatch")
		}

		wantHash, err := utils.ComputeHash(payload, objType)
		if err != nil {
			t.Fatalf("ComputeHash failed: %v", err)
		}
		gotHash, err := utils.ComputeHash(got, header.Type)
		if err != nil {
			t.Fatalf("ComputeHash failed: %v", err)
		}
		if gotHash != wantHash {
			t.Fatalf("hash = %s, want %s", gotHash, wantHash)
		}
	})
}
