// Package pwstore implements salted, iterated-SHA-256 password hash
// records with a self-describing textual format:
//
//	sha256|<strength>|<salt:base64>|<hash:base64>
//
// Example: sha256|12|Ge9pg8a/r4JW356Uux2JHg==|Fdv4jchzDlRAs6WFNUarxLngaittknbaHFFc0k8hAy0=
//
// The effective iteration count of a record is 2^strength, so bumping
// the strength by one doubles the work an attacker must spend per guess.
// Because every parameter is embedded in the record, a stored record can
// always be verified regardless of how the library is configured today.
//
// # Architecture
//
// Two API layers share one engine:
//
//   - Package-level functions ([MakePassword], [VerifyPassword],
//     [StrengthenPassword], [PasswordStrength], [IsFormatValid]) expose
//     the frozen record contract. They never return errors: malformed
//     records verify as false, inspect as strength 0, and strengthen to
//     themselves, so adversarial input can never crash a login path.
//   - [Hasher] wraps the same engine with a configured default strength,
//     a validating constructor, and [Hasher.NeedsRehash] for the
//     upgrade-on-login pattern.
//
// # Quick start
//
//	record := pwstore.MakePassword("my-secret-password", pwstore.DefaultStrength)
//	ok := pwstore.VerifyPassword("my-secret-password", record) // true
//
// # Strengthening
//
// A record's iteration count can be raised after the fact, without the
// plaintext password, by continuing the hash chain from the stored
// digest:
//
//	stronger := pwstore.StrengthenPassword(record, 14)
//	pwstore.VerifyPassword("my-secret-password", stronger) // still true
//
// Run this over a password database whenever hardware improvements make
// the stored strength too cheap to brute-force.
//
// # Security notes
//
//   - Strength 12 (4096 iterations) is the recommended default at the
//     time of writing; never go below [RecommendedMinStrength].
//   - Iterated SHA-256 is not memory-hard. It defeats rainbow tables and
//     slows dictionary attacks, but a GPU attacker scales better against
//     it than against Argon2 or scrypt. Use this package when you need
//     this exact record format; prefer a memory-hard KDF for new systems
//     that own their storage format.
//   - Hash comparison during verification is performed in constant time.
//
// # Wire compatibility
//
// The derivation feeds the salt's base64 *encoding*, not its raw bytes,
// into the first digest. This is part of the record contract: changing
// it would invalidate every previously issued record. See [Salt].
package pwstore
