package numtheory

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GCD returns the non-negative greatest common divisor of a and b using the
// Euclidean algorithm. GCD(a, 0) is |a|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x.Abs(x)
}

// ExtendedGCD returns g, x, y with a*x + b*y = g.
//
// Division truncates toward zero, so the identity holds for negative inputs
// as well; in that case g may be negative and |g| equals GCD(a, b). Callers
// that need a non-negative result normalize the sign themselves.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	if b.Sign() == 0 {
		return new(big.Int).Set(a), big.NewInt(1), big.NewInt(0)
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	g, x1, y1 := ExtendedGCD(b, r)

	// x = y1, y = x1 - q*y1
	y = q.Mul(q, y1)
	y.Sub(x1, y)
	return g, y1, y
}

// LCM returns a*b / gcd(a, b). It fails with ErrInvalidModulus when both
// inputs are zero.
func LCM(a, b *big.Int) (*big.Int, error) {
	g := GCD(a, b)
	if g.Sign() == 0 {
		return nil, wrap("LCM", ErrInvalidModulus)
	}
	l := new(big.Int).Mul(a, b)
	return l.Quo(l, g), nil
}
