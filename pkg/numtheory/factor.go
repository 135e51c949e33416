package numtheory

import (
	"fmt"
	"math/big"
	"strings"
)

// Factor is one prime power of a factorization.
type Factor struct {
	Prime    *big.Int
	Exponent int
}

func (f Factor) String() string {
	if f.Exponent == 1 {
		return f.Prime.String()
	}
	return fmt.Sprintf("%s^%d", f.Prime, f.Exponent)
}

// Factorization is a product of prime powers in discovery order.
type Factorization []Factor

// PrimeFactors factors n by trial division.
//
// Factors of 2 come first, then odd divisors in ascending order while
// divisor^2 <= the unfactored remainder. A remainder above 1 is itself prime
// and comes last. Each prime appears once with its multiplicity. Values of n
// below 2 have an empty factorization.
func PrimeFactors(n *big.Int) Factorization {
	var factors Factorization
	if n.Cmp(two) < 0 {
		return factors
	}

	rest := new(big.Int).Set(n)
	if k := rest.TrailingZeroBits(); k > 0 {
		factors = append(factors, Factor{Prime: big.NewInt(2), Exponent: int(k)})
		rest.Rsh(rest, k)
	}

	divisor := big.NewInt(3)
	square := new(big.Int)
	q, r := new(big.Int), new(big.Int)
	for square.Mul(divisor, divisor).Cmp(rest) <= 0 {
		exponent := 0
		for {
			q.QuoRem(rest, divisor, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			exponent++
		}
		if exponent > 0 {
			factors = append(factors, Factor{Prime: new(big.Int).Set(divisor), Exponent: exponent})
		}
		divisor.Add(divisor, two)
	}
	if rest.Cmp(one) > 0 {
		factors = append(factors, Factor{Prime: rest, Exponent: 1})
	}
	return factors
}

// Product multiplies the factorization back out. The empty product is 1.
func (f Factorization) Product() *big.Int {
	result := big.NewInt(1)
	for _, factor := range f {
		result.Mul(result, Pow(factor.Prime, uint(factor.Exponent)))
	}
	return result
}

// Primes returns the distinct primes of the factorization.
func (f Factorization) Primes() []*big.Int {
	primes := make([]*big.Int, len(f))
	for i, factor := range f {
		primes[i] = new(big.Int).Set(factor.Prime)
	}
	return primes
}

func (f Factorization) String() string {
	parts := make([]string, len(f))
	for i, factor := range f {
		parts[i] = factor.String()
	}
	return strings.Join(parts, " * ")
}
