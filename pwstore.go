package pwstore

import (
	"crypto/subtle"
	"fmt"
)

const (
	// DefaultStrength is the recommended iteration exponent for new
	// records at the time of writing (2^12 = 4096 iterations). Raise it
	// as hardware improves; [StrengthenPassword] upgrades existing
	// records in place.
	DefaultStrength = 12

	// RecommendedMinStrength is the lowest strength considered
	// operationally sane. It is documentation, not an enforced bound:
	// records with any non-negative strength remain valid.
	RecommendedMinStrength = 10
)

// iterationCount converts a strength exponent into the effective
// iteration count 2^strength. Negative strengths are treated as zero.
func iterationCount(strength int) uint64 {
	if strength < 0 {
		strength = 0
	}
	return uint64(1) << uint(strength)
}

// MakePassword hashes password with a fresh random salt and returns the
// textual record. Two calls with the same password produce different
// records. strength is the iteration exponent; use [DefaultStrength]
// unless you have measured a better value for your hardware.
func MakePassword(password string, strength int) string {
	return MakePasswordWithSalt(password, NewRandomSalt(), strength)
}

// MakePasswordWithSalt hashes password with the given salt and returns
// the textual record. It is pure: identical inputs yield a byte-identical
// record, which makes it the entry point for deterministic tests and for
// callers that manage their own salts.
func MakePasswordWithSalt(password string, salt Salt, strength int) string {
	hash := deriveKey([]byte(password), salt, iterationCount(strength))
	return encodeRecord(strength, salt, hash)
}

// VerifyPassword reports whether password matches record.
//
// A malformed record verifies as false, exactly like a wrong password:
// login paths never need to distinguish corrupted storage from a bad
// guess, and adversarial input cannot make verification fail loudly.
// The hash comparison runs in constant time.
func VerifyPassword(password, record string) bool {
	p, err := decodeRecord(record)
	if err != nil {
		return false
	}
	computed := deriveKey([]byte(password), p.salt, iterationCount(p.strength))
	return subtle.ConstantTimeCompare(computed, p.hash) == 1
}

// StrengthenPassword returns a new record equivalent to record but with
// iteration exponent strength. The plaintext password is not needed:
// the digest chain is continued from the stored hash for the extra
// 2^strength − 2^oldStrength rounds.
//
// If record is malformed, or its stored strength is already >= strength,
// the input is returned unchanged, byte for byte. Strengthening never
// weakens: there is no way to continue the chain backwards.
func StrengthenPassword(record string, strength int) string {
	p, err := decodeRecord(record)
	if err != nil {
		return record
	}
	if p.strength >= strength {
		return record
	}
	extra := iterationCount(strength) - iterationCount(p.strength)
	return encodeRecord(strength, p.salt, extendChain(p.hash, extra))
}

// PasswordStrength returns the iteration exponent stored in record, or 0
// if the record is malformed. Use [Info] when malformed records must be
// distinguished from genuine strength-0 records.
func PasswordStrength(record string) int {
	p, err := decodeRecord(record)
	if err != nil {
		return 0
	}
	return p.strength
}

// IsFormatValid reports whether record is a structurally valid password
// record. It says nothing about which password the record belongs to.
func IsFormatValid(record string) bool {
	_, err := decodeRecord(record)
	return err == nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Hasher
// ──────────────────────────────────────────────────────────────────────────────

// Options configures a [Hasher].
type Options struct {
	// Strength is the iteration exponent used for newly created records.
	// Must be non-negative. Default: [DefaultStrength].
	Strength int
}

// DefaultOptions returns Options with [DefaultStrength].
func DefaultOptions() Options {
	return Options{Strength: DefaultStrength}
}

// Hasher hashes and verifies passwords at a configured strength. It is
// a thin wrapper over the package-level functions for callers that
// prefer injecting a configured value over passing a strength at every
// call site.
//
// Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	strength int
}

// New constructs a Hasher. Returns [ErrInvalidOption] if the strength is
// negative. Use [DefaultOptions] for the recommended defaults.
func New(opts Options) (*Hasher, error) {
	if opts.Strength < 0 {
		return nil, fmt.Errorf("%w: strength must be non-negative, got %d",
			ErrInvalidOption, opts.Strength)
	}
	return &Hasher{strength: opts.Strength}, nil
}

// Scheme returns [SchemeSHA256].
func (h *Hasher) Scheme() Scheme { return SchemeSHA256 }

// Strength returns the configured iteration exponent.
func (h *Hasher) Strength() int { return h.strength }

// Make hashes password with a fresh random salt at the configured
// strength and returns the textual record.
func (h *Hasher) Make(password string) string {
	return MakePassword(password, h.strength)
}

// MakeWithSalt hashes password with the given salt at the configured
// strength. Pure; see [MakePasswordWithSalt].
func (h *Hasher) MakeWithSalt(password string, salt Salt) string {
	return MakePasswordWithSalt(password, salt, h.strength)
}

// Check reports whether password matches record. Identical to
// [VerifyPassword]; the configured strength plays no part, because the
// record describes its own parameters.
func (h *Hasher) Check(password, record string) bool {
	return VerifyPassword(password, record)
}

// NeedsRehash reports whether record was produced at a lower strength
// than the Hasher's configuration. When it returns true, call
// [Hasher.Strengthen] (no password needed) or re-make the record on the
// next successful login and persist the result.
//
// Malformed records return false: they cannot be upgraded, only
// replaced once the user proves the password again.
func (h *Hasher) NeedsRehash(record string) bool {
	p, err := decodeRecord(record)
	if err != nil {
		return false
	}
	return p.strength < h.strength
}

// Strengthen upgrades record to the configured strength without the
// plaintext password. Records at or above the configured strength, and
// malformed records, are returned unchanged. See [StrengthenPassword].
func (h *Hasher) Strengthen(record string) string {
	return StrengthenPassword(record, h.strength)
}

// Info extracts metadata from record; see [Info].
func (h *Hasher) Info(record string) (RecordInfo, error) {
	return Info(record)
}
