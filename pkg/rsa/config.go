package rsa

import (
	"io"

	"github.com/hsiuhsiu/toyrsa-go/pkg/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
)

// Config holds the knobs of key generation. The zero value draws from
// crypto/rand, never gives up and does not log.
type Config struct {
	// Random is the entropy source for primes and the public exponent. Nil
	// selects crypto/rand.Reader. Use numtheory.NewSeededReader for
	// reproducible keys.
	Random io.Reader

	// MaxAttempts caps every randomized search: each prime draw, the
	// public-exponent search and the number of times a degenerate prime pair
	// is redrawn. Zero or negative means unbounded.
	MaxAttempts int

	// PrimeTest overrides the primality test applied to prime candidates.
	// Nil keeps numtheory.IsPrime, the single-base Miller–Rabin round.
	PrimeTest numtheory.PrimeTest

	// Logger receives debug events about generation. Nil discards them.
	Logger logging.Logger
}

func (c Config) sampler() numtheory.Sampler {
	return numtheory.Sampler{
		Random:      c.Random,
		MaxAttempts: c.MaxAttempts,
		PrimeTest:   c.PrimeTest,
	}
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.Nop()
	}
	return c.Logger
}
