package numtheory

import (
	"math/big"
	"math/bits"
)

// PowMod returns base^exponent mod modulus in [0, modulus).
//
// The exponent is scanned from its most significant bit down: each step
// squares the running result and multiplies by base when the bit is set.
func PowMod(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Cmp(one) < 0 {
		return nil, wrap("PowMod", ErrInvalidModulus)
	}
	if exponent.Sign() < 0 {
		return nil, wrap("PowMod", ErrNegativeExponent)
	}

	b := new(big.Int).Mod(base, modulus)
	result := new(big.Int).Mod(one, modulus)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}
	return result, nil
}

// Pow returns base^exponent without reduction. It is meant for small
// exponents, such as the powers of two bounding a prime search.
func Pow(base *big.Int, exponent uint) *big.Int {
	result := big.NewInt(1)
	for i := bits.Len(exponent) - 1; i >= 0; i-- {
		result.Mul(result, result)
		if exponent&(1<<uint(i)) != 0 {
			result.Mul(result, base)
		}
	}
	return result
}
