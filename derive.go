package pwstore

import "crypto/sha256"

// HashLength is the size in bytes of a derived hash (one SHA-256 digest).
const HashLength = sha256.Size

// deriveKey computes the password hash: the digest of the password
// concatenated with the salt's *encoded* form, then iterations+1 further
// digest applications over the previous output. Total digest
// applications are therefore iterations+2; even iterations == 0 hashes
// twice.
//
// Feeding the encoded salt rather than its raw bytes is part of the
// frozen record contract (see the package documentation).
//
// Pure and deterministic: identical inputs always produce identical
// output, which is what makes verification possible.
func deriveKey(password []byte, salt Salt, iterations uint64) []byte {
	buf := make([]byte, 0, len(password)+len(salt.encoded))
	buf = append(buf, password...)
	buf = append(buf, salt.encoded...)

	d := sha256.Sum256(buf)
	for i := uint64(0); i <= iterations; i++ {
		d = sha256.Sum256(d[:])
	}
	return d[:]
}

// extendChain applies the digest rounds more times to an existing hash,
// continuing the derivation chain from its stored endpoint. This is what
// lets a record be strengthened without the plaintext password:
// extendChain(deriveKey(p, s, n), k) == deriveKey(p, s, n+k).
func extendChain(hash []byte, rounds uint64) []byte {
	d := [HashLength]byte(hash)
	for i := uint64(0); i < rounds; i++ {
		d = sha256.Sum256(d[:])
	}
	return d[:]
}
