package store

import (
	"strings"
	"unicode/utf8"

	perrors "github.com/quiltmoor/passgit/internal/errors"
)

// Entry is the decrypted view of one store record: the password plus any
// metadata lines. Metadata lines are opaque to the engine and preserved
// verbatim; some tools encode field:value pairs in them, but interpreting
// that is the caller's business.
type Entry struct {
	// Password is the secret itself, the first line of the record.
	Password string

	// Metadata holds the remaining lines in order, blank lines included.
	Metadata []string
}

// Encode serializes the entry to record plaintext: the password line, then
// each metadata line, every line newline-terminated. UTF-8 throughout.
func (e Entry) Encode() []byte {
	var b strings.Builder
	b.WriteString(e.Password)
	b.WriteString("\n")
	for _, line := range e.Metadata {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// Decode parses record plaintext back into an Entry. Empty input yields
// the empty entry. Decode(e.Encode()) reproduces e exactly.
//
// Input that is not valid UTF-8 fails with ErrInvalidRecord rather than
// being silently replaced: a lossy fallback would make data loss look like
// a legitimate empty password.
func Decode(data []byte) (Entry, error) {
	if len(data) == 0 {
		return Entry{}, nil
	}
	if !utf8.Valid(data) {
		return Entry{}, perrors.ErrInvalidRecord
	}

	lines := strings.Split(string(data), "\n")
	// A well-formed record ends with a newline; drop the empty element the
	// final terminator produces, but only that one, so trailing blank
	// metadata lines survive.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	entry := Entry{Password: lines[0]}
	if len(lines) > 1 {
		entry.Metadata = lines[1:]
	}
	return entry, nil
}

// Equal reports whether two entries hold the same line sequence.
func (e Entry) Equal(other Entry) bool {
	if e.Password != other.Password || len(e.Metadata) != len(other.Metadata) {
		return false
	}
	for i := range e.Metadata {
		if e.Metadata[i] != other.Metadata[i] {
			return false
		}
	}
	return true
}

// ValidName reports whether an entry name is acceptable at a read or
// write boundary: store-relative, slash-separated, with no empty,
// relative, or hidden components. Names like "a/../b" and "a/.hidden"
// are rejected. Every engine operation that maps a name to a path checks
// it, so a name can never resolve outside the store root.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return false
	}
	for _, component := range strings.Split(name, "/") {
		if component == "" || strings.HasPrefix(component, ".") {
			return false
		}
	}
	return true
}
