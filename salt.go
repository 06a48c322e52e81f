package pwstore

import (
	"encoding/base64"
	"fmt"
	mrand "math/rand/v2"
)

const (
	// SaltLength is the number of random bytes drawn for a generated salt.
	SaltLength = 16

	// MinSaltLength is the smallest raw salt [NewSalt] accepts. It is
	// deliberately smaller than [SaltLength]: compatible callers may have
	// constructed 8-byte salts by hand, and their records must keep
	// verifying.
	MinSaltLength = 8
)

// Salt is random data mixed into the password before hashing, defeating
// precomputed lookup-table attacks.
//
// A Salt stores its base64 *encoding*, not its raw bytes, because the
// derivation feeds the encoded form into the digest (see the package
// documentation on wire compatibility). Salts are immutable value types
// and safe to copy and share.
//
// The zero Salt is not valid; obtain one from [NewSalt], [NewRandomSalt],
// or [NewSaltFromRand].
type Salt struct {
	encoded string
}

// NewSalt wraps raw bytes as a Salt. Returns [ErrSaltTooShort] if raw is
// shorter than [MinSaltLength] bytes — a call-site bug, since generated
// salts and salts read back from records are always long enough.
func NewSalt(raw []byte) (Salt, error) {
	if len(raw) < MinSaltLength {
		return Salt{}, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrSaltTooShort, len(raw), MinSaltLength)
	}
	return Salt{encoded: base64.StdEncoding.EncodeToString(raw)}, nil
}

// NewRandomSalt draws [SaltLength] bytes from the operating system's
// CSPRNG and wraps them as a Salt. If the system entropy source fails,
// it falls back to a seeded general-purpose generator rather than
// failing; the caller always receives a usable salt.
func NewRandomSalt() Salt {
	// Length is fixed at 16, so the error branch of NewSalt is dead.
	s, _ := NewSalt(randomSaltBytes())
	return s
}

// NewSaltFromRand draws [SaltLength] bytes from the caller-supplied
// generator and wraps them as a Salt. It performs no I/O: identical
// generator states produce identical salts, which makes it the variant
// to use in deterministic tests. The generator's state advances in
// place.
func NewSaltFromRand(r *mrand.Rand) Salt {
	s, _ := NewSalt(saltBytesFromRand(r))
	return s
}

// saltFromEncoded wraps an already-encoded salt field read back from a
// record. The field is accepted on trust from the original encoder; the
// minimum-length invariant is not re-checked on decode.
func saltFromEncoded(encoded string) Salt {
	return Salt{encoded: encoded}
}

// Encoded returns the salt's base64 form — the exact bytes that
// participate in derivation and appear in the record's third field.
func (s Salt) Encoded() string { return s.encoded }

// Raw decodes and returns the salt's raw bytes. The second return value
// is false if the encoded form is not valid base64, which can only
// happen for a salt recovered from a hand-corrupted record.
func (s Salt) Raw() ([]byte, bool) {
	raw, err := base64.StdEncoding.DecodeString(s.encoded)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// String returns the encoded form, so a Salt prints as it is stored.
func (s Salt) String() string { return s.encoded }
