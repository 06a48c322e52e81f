package pwstore

import (
	crand "crypto/rand"
	"io"
	mrand "math/rand/v2"
)

// randomSaltBytes returns [SaltLength] bytes of randomness. The primary
// source is the operating system's CSPRNG; on any read failure it falls
// back, without surfacing an error, to the runtime-seeded
// general-purpose generator. Salt bytes need to be unpredictable, not
// secret, so the fallback keeps salt generation available even when the
// entropy device cannot be read.
func randomSaltBytes() []byte {
	b := make([]byte, SaltLength)
	if _, err := io.ReadFull(crand.Reader, b); err == nil {
		return b
	}
	for i := range b {
		b[i] = byte(mrand.UintN(256))
	}
	return b
}

// saltBytesFromRand draws [SaltLength] independent, uniformly
// distributed bytes from the caller's generator. No I/O: the result is a
// pure function of the generator state, which advances in place.
func saltBytesFromRand(r *mrand.Rand) []byte {
	b := make([]byte, SaltLength)
	for i := range b {
		b[i] = byte(r.UintN(256))
	}
	return b
}
