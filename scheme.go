package pwstore

import "strings"

// Scheme identifies the digest scheme encoded in a record's first field.
// Using a named string type prevents accidental confusion with plain
// strings.
//
// The enumeration is closed: [SchemeSHA256] is the only scheme today.
// It exists as a type so that a future digest upgrade can extend the
// record format without changing its shape.
type Scheme string

const (
	// SchemeSHA256 is the iterated-SHA-256 scheme. All records produced
	// by this package carry this tag; records with any other tag are
	// rejected as invalid.
	SchemeSHA256 Scheme = "sha256"
)

// DetectScheme inspects a record string and returns the [Scheme] named
// in its first field. It is a cheap prefix check and does not validate
// the rest of the record.
//
// The second return value is false when the tag is not a known scheme.
func DetectScheme(record string) (Scheme, bool) {
	tag, _, ok := strings.Cut(record, recordSeparator)
	if !ok || Scheme(tag) != SchemeSHA256 {
		return "", false
	}
	return SchemeSHA256, true
}
