package pwstore

import "errors"

// Sentinel errors returned by pwstore operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := pwstore.NewSalt(raw)
//	if errors.Is(err, pwstore.ErrSaltTooShort) {
//	    // raw is shorter than the 8-byte minimum
//	}
//
// Note that the package-level record operations ([VerifyPassword],
// [StrengthenPassword], [PasswordStrength], [IsFormatValid]) never
// return errors at all; they collapse failures into their documented
// sentinel results instead.
var (
	// ErrInvalidRecord is returned by [Info] and [Hasher.Info] when a
	// record string cannot be parsed: wrong field count, unknown scheme
	// tag, malformed strength, or a hash that does not decode to exactly
	// 32 bytes.
	ErrInvalidRecord = errors.New("pwstore: invalid or unrecognised password record")

	// ErrSaltTooShort is returned by [NewSalt] when the raw salt is
	// shorter than 8 bytes. This is a programmer error at the call site,
	// never a data error: salts from [NewRandomSalt] and from stored
	// records can not trigger it.
	ErrSaltTooShort = errors.New("pwstore: salt must be at least 8 bytes")

	// ErrInvalidOption is returned by [New] when an option value falls
	// outside the allowed range (e.g., a negative strength).
	ErrInvalidOption = errors.New("pwstore: invalid option value")
)
