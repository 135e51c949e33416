package numtheory

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	mrand "math/rand/v2"
)

// PrimeTest decides whether a candidate is prime.
type PrimeTest func(candidate *big.Int) bool

// PrimitiveTest decides whether candidate is a primitive root modulo a prime.
type PrimitiveTest func(candidate, modulus *big.Int) bool

// Sampler draws uniform integers from Random and drives the randomized
// searches of this package.
//
// The zero value reads from crypto/rand.Reader, never gives up, tests
// primes with IsPrime and primitive roots with IsPrimitive.
type Sampler struct {
	// Random is the entropy source. Nil selects crypto/rand.Reader.
	Random io.Reader

	// MaxAttempts caps every search. Zero or negative means unbounded.
	MaxAttempts int

	// PrimeTest is used by Prime. Nil selects IsPrime.
	PrimeTest PrimeTest

	// PrimitiveTest is used by PrimitiveRoot. Nil selects IsPrimitive.
	PrimitiveTest PrimitiveTest
}

// NewSeededReader returns a deterministic ChaCha8 byte stream derived from
// seed. Two readers built from the same seed yield the same bytes, which
// makes key generation reproducible in tests. It is not a secure source.
func NewSeededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return mrand.NewChaCha8(key)
}

// RandomPrime draws a prime of roughly bitLength bits from random.
// See Sampler.Prime.
func RandomPrime(random io.Reader, bitLength int) (*big.Int, error) {
	return Sampler{Random: random}.Prime(context.Background(), bitLength)
}

// RandomPrimitiveRoot draws values from [1, modulus-1] until one passes
// IsPrimitive. See Sampler.PrimitiveRoot.
func RandomPrimitiveRoot(random io.Reader, modulus *big.Int) (*big.Int, error) {
	return Sampler{Random: random}.PrimitiveRoot(context.Background(), modulus)
}

// Intn returns a uniform integer in the closed range [lo, hi].
func (s Sampler) Intn(lo, hi *big.Int) (*big.Int, error) {
	if lo.Cmp(hi) > 0 {
		return nil, errorf("Intn", "empty range [%s, %s]", lo, hi)
	}
	width := new(big.Int).Sub(hi, lo)
	width.Add(width, one)
	r, err := uniform(s.reader(), width)
	if err != nil {
		return nil, &Error{Op: "Intn", Err: err}
	}
	return r.Add(r, lo), nil
}

// Prime returns a random prime for the given bit length.
//
// A bit length of 1 yields 2. Otherwise an integer c is drawn uniformly from
// [2^(bitLength-2), 2^(bitLength-1)] and the candidate 2c+1 is tested with
// PrimeTest until one passes. The inclusive upper bound means the candidate
// 2^bitLength + 1 is possible, one bit longer than requested.
func (s Sampler) Prime(ctx context.Context, bitLength int) (*big.Int, error) {
	if bitLength < 1 {
		return nil, wrap("Prime", ErrInvalidBitLength)
	}
	if bitLength == 1 {
		return big.NewInt(2), nil
	}

	test := s.PrimeTest
	if test == nil {
		test = IsPrime
	}
	lo := Pow(two, uint(bitLength-2))
	hi := Pow(two, uint(bitLength-1))
	return s.search(ctx, "Prime", func() (*big.Int, bool, error) {
		c, err := s.Intn(lo, hi)
		if err != nil {
			return nil, false, err
		}
		c.Lsh(c, 1)
		c.SetBit(c, 0, 1)
		return c, test(c), nil
	})
}

// Coprime returns a uniform e in [2, n-1] with gcd(e, n) = 1.
func (s Sampler) Coprime(ctx context.Context, n *big.Int) (*big.Int, error) {
	hi := new(big.Int).Sub(n, one)
	if hi.Cmp(two) < 0 {
		return nil, wrap("Coprime", ErrInvalidModulus)
	}
	return s.search(ctx, "Coprime", func() (*big.Int, bool, error) {
		e, err := s.Intn(two, hi)
		if err != nil {
			return nil, false, err
		}
		return e, GCD(e, n).Cmp(one) == 0, nil
	})
}

// PrimitiveRoot draws candidates uniformly from [1, modulus-1] until
// PrimitiveTest accepts one. modulus is expected to be prime.
func (s Sampler) PrimitiveRoot(ctx context.Context, modulus *big.Int) (*big.Int, error) {
	if modulus.Cmp(two) < 0 {
		return nil, wrap("PrimitiveRoot", ErrInvalidModulus)
	}
	test := s.PrimitiveTest
	if test == nil {
		test = IsPrimitive
	}
	hi := new(big.Int).Sub(modulus, one)
	return s.search(ctx, "PrimitiveRoot", func() (*big.Int, bool, error) {
		g, err := s.Intn(one, hi)
		if err != nil {
			return nil, false, err
		}
		return g, test(g, modulus), nil
	})
}

func (s Sampler) reader() io.Reader {
	if s.Random == nil {
		return rand.Reader
	}
	return s.Random
}

// search runs try until it accepts a value, the attempt cap is reached or
// ctx is done.
func (s Sampler) search(ctx context.Context, op string, try func() (*big.Int, bool, error)) (*big.Int, error) {
	for attempt := 1; ; attempt++ {
		if s.MaxAttempts > 0 && attempt > s.MaxAttempts {
			return nil, wrap(op, ErrSearchExhausted)
		}
		if err := ctx.Err(); err != nil {
			return nil, wrap(op, err)
		}
		v, ok, err := try()
		if err != nil {
			return nil, wrap(op, err)
		}
		if ok {
			return v, nil
		}
	}
}

// uniform returns a uniform value in [0, max) by rejection sampling over the
// shortest byte string that covers max, the same construction crypto/rand.Int
// uses. It only reads from random, so a seeded reader gives repeatable output.
func uniform(random io.Reader, max *big.Int) (*big.Int, error) {
	k := max.BitLen()
	b := uint(k % 8)
	if b == 0 {
		b = 8
	}
	buf := make([]byte, (k+7)/8)
	n := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("read random source: %w", err)
		}
		buf[0] &= uint8(int(1<<b) - 1)
		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
