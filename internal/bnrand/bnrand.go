// Package bnrand provides the PRNG adapters shared by bignum and curve.
//
// Randomness here is the host's general-purpose PRNG (math/rand), not a
// cryptographically secure source: spec.md's Non-goals explicitly exclude
// CSPRNG guarantees and constant-time execution, matching the teacher's own
// setRandomUnsafe helpers in field_element_64.go, which are documented as
// not cryptographically sound and used only for testing and sampling.
package bnrand

import "math/rand"

// Source is the minimal interface bignum depends on, satisfied by
// *rand.Rand. Callers that need determinism pass a seeded *rand.Rand;
// callers that don't care can pass Global().
type Source interface {
	Uint64() uint64
}

// Global returns a *rand.Rand seeded from the package-level global source.
// Every call returns a distinct generator seeded from crypto-independent
// entropy via rand.Int63(), matching the teacher's use of math/rand for
// non-crypto-grade sampling (setRandomUnsafe).
func Global() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
