package pwstore

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// recordSeparator delimits the four record fields. None of the fields
// can contain it (fixed tag, decimal digits, base64 alphabet), so no
// escaping is needed.
const recordSeparator = "|"

// recordParams holds the fields decoded from a record string.
type recordParams struct {
	scheme   Scheme
	strength int
	salt     Salt
	hash     []byte // raw digest, always HashLength bytes
}

// encodeRecord serialises a record in the canonical textual format:
//
//	sha256|<strength>|<salt_base64>|<hash_base64>
func encodeRecord(strength int, salt Salt, hash []byte) string {
	return strings.Join([]string{
		string(SchemeSHA256),
		strconv.Itoa(strength),
		salt.Encoded(),
		base64.StdEncoding.EncodeToString(hash),
	}, recordSeparator)
}

// decodeRecord parses a record string and returns its components.
//
// A record is valid iff it splits into exactly 4 fields, the scheme tag
// is known, the strength parses as an unsigned decimal (no sign, no
// surrounding garbage), and the hash field base64-decodes to exactly
// [HashLength] bytes. The salt field is accepted on trust from the
// encoder; its minimum-length invariant is not re-checked here.
func decodeRecord(record string) (*recordParams, error) {
	parts := strings.Split(record, recordSeparator)
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", ErrInvalidRecord, len(parts))
	}

	if Scheme(parts[0]) != SchemeSHA256 {
		return nil, fmt.Errorf("%w: unknown scheme %q", ErrInvalidRecord, parts[0])
	}

	// Bit size 31 keeps the parsed value inside int on every platform.
	strength, err := strconv.ParseUint(parts[1], 10, 31)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed strength %q", ErrInvalidRecord, parts[1])
	}

	hash, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash base64: %v", ErrInvalidRecord, err)
	}
	if len(hash) != HashLength {
		return nil, fmt.Errorf("%w: hash is %d bytes, want %d", ErrInvalidRecord, len(hash), HashLength)
	}

	return &recordParams{
		scheme:   SchemeSHA256,
		strength: int(strength),
		salt:     saltFromEncoded(parts[2]),
		hash:     hash,
	}, nil
}

// RecordInfo carries metadata parsed from a record string.
type RecordInfo struct {
	// Scheme is the digest scheme that produced the record.
	Scheme Scheme

	// Strength is the record's iteration exponent; the effective
	// iteration count is 2^Strength.
	Strength int

	// Salt is the record's salt.
	Salt Salt
}

// Info extracts metadata from a record string without verifying a
// password against it. Useful for auditing and migration tooling.
//
// Unlike [PasswordStrength], Info reports malformed records explicitly:
// it returns [ErrInvalidRecord] instead of a sentinel value.
func Info(record string) (RecordInfo, error) {
	p, err := decodeRecord(record)
	if err != nil {
		return RecordInfo{}, err
	}
	return RecordInfo{Scheme: p.scheme, Strength: p.strength, Salt: p.salt}, nil
}
