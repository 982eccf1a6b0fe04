package objects

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/KostasZigo/gitgraph/internal/constants"
	"github.com/KostasZigo/gitgraph/utils"
)

// Sentinel errors for the object-store error taxonomy. Callers distinguish
// them with errors.Is: per-object failures during bulk scans are skipped,
// the same failures on a specifically required object are fatal.
var (
	// ErrNotRepository means the path does not contain a .git/objects tree.
	ErrNotRepository = errors.New("not a git repository")

	// ErrObjectNotFound means no loose object exists at the derived path.
	ErrObjectNotFound = errors.New("object not found")

	// ErrCorruptObject means decompression failed or the header is malformed.
	ErrCorruptObject = errors.New("corrupt object")

	// ErrEncoding means a commit payload is not valid UTF-8.
	ErrEncoding = errors.New("payload is not valid UTF-8")

	// ErrMalformedCommit means a required commit header line is missing.
	ErrMalformedCommit = errors.New("malformed commit")
)

// Header is the "<type> <length>" prefix of every decompressed object,
// separated from the payload by a single null byte.
type Header struct {
	Type   utils.ObjectType
	Length int
}

// splitHeader splits decompressed object data into its header and payload.
// Returns ErrCorruptObject when no null separator exists, the header shape
// is wrong, or the declared length disagrees with the payload length.
func splitHeader(data []byte) (Header, []byte, error) {
	nullByteIndex := bytes.IndexByte(data, constants.NullByte)
	if nullByteIndex == -1 {
		return Header{}, nil, fmt.Errorf("%w: no null byte separator", ErrCorruptObject)
	}

	rawHeader := data[:nullByteIndex]
	payload := data[nullByteIndex+1:]

	objType, rawLength, found := bytes.Cut(rawHeader, []byte(" "))
	if !found {
		return Header{}, nil, fmt.Errorf("%w: header %q has no length field", ErrCorruptObject, rawHeader)
	}

	length, err := strconv.Atoi(string(rawLength))
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: non-numeric length in header %q", ErrCorruptObject, rawHeader)
	}

	if length != len(payload) {
		return Header{}, nil, fmt.Errorf("%w: header declares %d bytes, payload has %d", ErrCorruptObject, length, len(payload))
	}

	return Header{Type: utils.ObjectType(objType), Length: length}, payload, nil
}
