// Package numtheory implements the integer arithmetic the RSA package is
// built on: greatest common divisors, Bézout coefficients, modular and plain
// exponentiation, Miller–Rabin primality testing, random prime generation,
// trial-division factorization and primitive roots.
//
// Every function operates on math/big integers, never mutates its arguments
// and returns freshly allocated results.
//
// # Randomness
//
// Functions that sample take an explicit io.Reader. A Sampler bundles the
// reader with an optional attempt cap:
//
//	s := numtheory.Sampler{Random: numtheory.NewSeededReader(42), MaxAttempts: 1000}
//	p, err := s.Prime(ctx, 32)
//
// MaxAttempts of zero keeps the searches unbounded; they terminate with
// probability 1. A nil Random falls back to crypto/rand.Reader.
//
// # Primality
//
// IsPrime is a single-base Miller–Rabin test with witness 2. It is
// probabilistic: base-2 strong pseudoprimes such as 2047 = 23 * 89 are
// reported prime. IsPrimeBases runs several witnesses and, with
// DeterministicBases, is exact for every n below 3,215,031,751.
//
// # Primitive roots
//
// IsPrimitive reproduces the historical test of this library, which raises
// the reduced exponent k = (p-1)/l to itself instead of raising the
// candidate to k. Its answer therefore does not depend on the candidate
// (other than zero). IsPrimitiveRoot is the textbook test. Pick one
// explicitly through Sampler.PrimitiveTest.
//
// None of the arithmetic here is constant-time.
package numtheory
