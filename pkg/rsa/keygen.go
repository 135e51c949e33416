package rsa

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// GenerateKeys generates a key pair with the zero Config and returns its
// public and private halves.
func GenerateKeys(bitLength int) (*PublicKey, *PrivateKey, error) {
	kp, err := Config{}.GenerateKeyPair(context.Background(), bitLength)
	if err != nil {
		return nil, nil, err
	}
	return &kp.Public, &kp.Private, nil
}

// GenerateKeyPair draws two primes of bitLength bits with
// numtheory.Sampler.Prime, sets n = p*q and lambda = lcm(p-1, q-1), picks e
// uniformly from [2, lambda-1] until gcd(e, lambda) = 1 and derives d as the
// inverse of e modulo lambda from the Bézout coefficients of (e, lambda).
//
// A bit length of 1 always fails with ErrDegenerateKeyPair since 2 is the
// only candidate. Otherwise a pair with p = q, or with no room for e, is
// redrawn; under MaxAttempts the redraws end in ErrDegenerateKeyPair wrapping
// ErrSearchExhausted.
func (c Config) GenerateKeyPair(ctx context.Context, bitLength int) (*KeyPair, error) {
	const op = "GenerateKeyPair"
	if bitLength < 1 {
		return nil, &Error{Op: op, Err: ErrInvalidBitLength}
	}
	if bitLength == 1 {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: 2 is the only 1-bit prime", ErrDegenerateKeyPair)}
	}

	s := c.sampler()
	log := c.logger().With("bits", bitLength)
	for attempt := 1; ; attempt++ {
		if c.MaxAttempts > 0 && attempt > c.MaxAttempts {
			return nil, &Error{Op: op, Err: fmt.Errorf("%w: %w", ErrDegenerateKeyPair, ErrSearchExhausted)}
		}

		p, err := s.Prime(ctx, bitLength)
		if err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		q, err := s.Prime(ctx, bitLength)
		if err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		if p.Cmp(q) == 0 {
			log.Debug(ctx, "prime pair collided, redrawing", "attempt", attempt)
			continue
		}

		lambda, err := numtheory.LCM(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		if err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		if lambda.Cmp(three) < 0 {
			log.Debug(ctx, "no public exponent fits lambda, redrawing", "attempt", attempt)
			continue
		}

		e, err := s.Coprime(ctx, lambda)
		if err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		_, x, _ := numtheory.ExtendedGCD(e, lambda)
		// big.Int.Mod is Euclidean, so d lands in [0, lambda).
		d := x.Mod(x, lambda)

		n := new(big.Int).Mul(p, q)
		log.Debug(ctx, "key pair generated",
			"attempt", attempt,
			logging.Bits("modulus", n),
			logging.Bits("lambda", lambda),
			logging.Redacted("private_exponent"),
		)
		return &KeyPair{
			Public:  PublicKey{Modulus: n, Exponent: e},
			Private: PrivateKey{Modulus: n, Exponent: d},
			P:       p,
			Q:       q,
			Lambda:  lambda,
		}, nil
	}
}
