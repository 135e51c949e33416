package numtheory

import "math/big"

// DeterministicBases are Miller–Rabin witnesses that together classify every
// n < 3,215,031,751 correctly.
var DeterministicBases = []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5), big.NewInt(7)}

// IsPrime runs a single Miller–Rabin round with witness 2.
//
// The test is probabilistic. Base-2 strong pseudoprimes, the smallest being
// 2047, are reported prime. Use IsPrimeBases when that matters.
func IsPrime(candidate *big.Int) bool {
	return IsPrimeBase(candidate, two)
}

// IsPrimeBase runs a single Miller–Rabin round on candidate with the given
// witness.
//
// With candidate-1 = 2^s * t and t odd, b = base^t mod candidate. The
// candidate passes when b is 1, or when b equals candidate-1 within s+1
// successive squarings.
func IsPrimeBase(candidate, base *big.Int) bool {
	if candidate.Cmp(one) <= 0 {
		return false
	}
	if candidate.Cmp(two) == 0 {
		return true
	}

	nMinus1 := new(big.Int).Sub(candidate, one)
	s := nMinus1.TrailingZeroBits()
	t := new(big.Int).Rsh(nMinus1, s)

	b, _ := PowMod(base, t, candidate)
	if b.Cmp(one) == 0 {
		return true
	}
	for i := uint(0); i <= s; i++ {
		if b.Cmp(nMinus1) == 0 {
			return true
		}
		b.Mul(b, b)
		b.Mod(b, candidate)
	}
	return false
}

// IsPrimeBases reports whether candidate passes a Miller–Rabin round for
// every base. Bases that are a multiple of candidate carry no information and
// are skipped, so small primes equal to a witness are not rejected.
func IsPrimeBases(candidate *big.Int, bases ...*big.Int) bool {
	if candidate.Cmp(one) <= 0 {
		return false
	}
	r := new(big.Int)
	for _, base := range bases {
		if r.Mod(base, candidate).Sign() == 0 {
			continue
		}
		if !IsPrimeBase(candidate, base) {
			return false
		}
	}
	return true
}

// IsPrimeDeterministic is IsPrimeBases with DeterministicBases. It satisfies
// PrimeTest, for samplers that should not accept base-2 pseudoprimes.
func IsPrimeDeterministic(candidate *big.Int) bool {
	return IsPrimeBases(candidate, DeterministicBases...)
}
