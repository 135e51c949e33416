package numtheory

import "math/big"

// IsPrimitive is the primitive-root test this library has always shipped.
//
// For every prime factor l of modulus-1 it computes k = (modulus-1)/l and
// rejects when k^k mod modulus is 1. The candidate only matters when it is
// zero, which is always rejected. The textbook test raises the candidate to
// k instead; see IsPrimitiveRoot. modulus is expected to be prime.
func IsPrimitive(candidate, modulus *big.Int) bool {
	if candidate.Sign() == 0 || modulus.Cmp(two) < 0 {
		return false
	}
	order := new(big.Int).Sub(modulus, one)
	for _, factor := range PrimeFactors(order) {
		k := new(big.Int).Quo(order, factor.Prime)
		r, _ := PowMod(k, k, modulus)
		if r.Cmp(one) == 0 {
			return false
		}
	}
	return true
}

// IsPrimitiveRoot reports whether candidate generates the multiplicative
// group modulo the prime modulus, i.e. candidate^((modulus-1)/l) mod modulus
// is not 1 for every prime factor l of modulus-1.
func IsPrimitiveRoot(candidate, modulus *big.Int) bool {
	if modulus.Cmp(two) < 0 {
		return false
	}
	if new(big.Int).Mod(candidate, modulus).Sign() == 0 {
		return false
	}
	order := new(big.Int).Sub(modulus, one)
	for _, factor := range PrimeFactors(order) {
		k := new(big.Int).Quo(order, factor.Prime)
		r, _ := PowMod(candidate, k, modulus)
		if r.Cmp(one) == 0 {
			return false
		}
	}
	return true
}
