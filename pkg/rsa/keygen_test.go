package rsa_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/toyrsa-go/pkg/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
	"github.com/hsiuhsiu/toyrsa-go/pkg/rsa"
)

// zeroReader makes every uniform draw return the bottom of its range.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestGenerateKeyPairInvariants(t *testing.T) {
	ctx := context.Background()
	for _, bits := range []int{2, 3, 4, 5, 6, 8, 10, 64, 128} {
		for seed := uint64(0); seed < 10; seed++ {
			cfg := rsa.Config{Random: numtheory.NewSeededReader(seed)}
			kp, err := cfg.GenerateKeyPair(ctx, bits)
			require.NoError(t, err, "bits=%d seed=%d", bits, seed)

			e, d, lambda := kp.Public.Exponent, kp.Private.Exponent, kp.Lambda
			if e.Cmp(big.NewInt(2)) < 0 || e.Cmp(lambda) >= 0 {
				t.Fatalf("bits=%d seed=%d: e outside [2, lambda):\n%s", bits, seed, spew.Sdump(kp))
			}
			if numtheory.GCD(e, lambda).Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("bits=%d seed=%d: gcd(e, lambda) != 1:\n%s", bits, seed, spew.Sdump(kp))
			}
			ed := new(big.Int).Mul(e, d)
			if ed.Mod(ed, lambda).Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("bits=%d seed=%d: e*d mod lambda != 1:\n%s", bits, seed, spew.Sdump(kp))
			}
			require.NoError(t, kp.Validate(), "bits=%d seed=%d", bits, seed)
			require.Zero(t, kp.Public.Modulus.Cmp(kp.Private.Modulus))
		}
	}
}

func TestGenerateKeyPairIsReproducible(t *testing.T) {
	ctx := context.Background()
	a, err := rsa.Config{Random: numtheory.NewSeededReader(31337)}.GenerateKeyPair(ctx, 96)
	require.NoError(t, err)
	b, err := rsa.Config{Random: numtheory.NewSeededReader(31337)}.GenerateKeyPair(ctx, 96)
	require.NoError(t, err)

	require.Zero(t, a.Public.Modulus.Cmp(b.Public.Modulus))
	require.Zero(t, a.Public.Exponent.Cmp(b.Public.Exponent))
	require.Zero(t, a.Private.Exponent.Cmp(b.Private.Exponent))
}

func TestGenerateKeysInvalidBitLength(t *testing.T) {
	_, _, err := rsa.GenerateKeys(0)
	if !errors.Is(err, rsa.ErrInvalidBitLength) {
		t.Fatalf("expected ErrInvalidBitLength, got %v", err)
	}

	_, _, err = rsa.GenerateKeys(1)
	if !errors.Is(err, rsa.ErrDegenerateKeyPair) {
		t.Fatalf("expected ErrDegenerateKeyPair, got %v", err)
	}
}

func TestGenerateKeyPairCollisionExhausted(t *testing.T) {
	// Every draw yields 5 for a 3-bit prime, so p = q forever.
	cfg := rsa.Config{Random: zeroReader{}, MaxAttempts: 3}
	_, err := cfg.GenerateKeyPair(context.Background(), 3)
	require.ErrorIs(t, err, rsa.ErrDegenerateKeyPair)
	require.ErrorIs(t, err, rsa.ErrSearchExhausted)

	var rerr *rsa.Error
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, "GenerateKeyPair", rerr.Op)
}

func TestGenerateKeyPairPrimeSearchExhausted(t *testing.T) {
	// Every draw yields 129 = 3 * 43 for an 8-bit prime.
	cfg := rsa.Config{Random: zeroReader{}, MaxAttempts: 5}
	_, err := cfg.GenerateKeyPair(context.Background(), 8)
	require.ErrorIs(t, err, rsa.ErrSearchExhausted)
	require.False(t, errors.Is(err, rsa.ErrDegenerateKeyPair))
}

func TestGenerateKeyPairCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rsa.Config{}.GenerateKeyPair(ctx, 64)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateKeyPairStrictPrimeTest(t *testing.T) {
	cfg := rsa.Config{
		Random:    numtheory.NewSeededReader(4),
		PrimeTest: numtheory.IsPrimeDeterministic,
	}
	for i := 0; i < 20; i++ {
		kp, err := cfg.GenerateKeyPair(context.Background(), 16)
		require.NoError(t, err)
		require.NoError(t, kp.Validate())
	}
}

func TestGenerateKeyPairLogsWithoutSecrets(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	cfg := rsa.Config{
		Random: numtheory.NewSeededReader(6),
		Logger: logging.New(slog.New(handler)),
	}

	kp, err := cfg.GenerateKeyPair(context.Background(), 64)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "key pair generated")
	require.Contains(t, out, "bits=64")
	require.Contains(t, out, logging.Placeholder())
	require.NotContains(t, out, kp.Private.Exponent.String())
	require.NotContains(t, out, kp.P.String())
	require.NotContains(t, out, kp.Q.String())
}

func TestValidateRejectsTampering(t *testing.T) {
	fresh := func() *rsa.KeyPair {
		kp, err := rsa.Config{Random: numtheory.NewSeededReader(21)}.GenerateKeyPair(context.Background(), 32)
		require.NoError(t, err)
		return kp
	}

	kp := fresh()
	kp.Public.Exponent = new(big.Int).Add(kp.Public.Exponent, big.NewInt(1))
	require.ErrorIs(t, kp.Validate(), rsa.ErrInvalidKeyPair)

	kp = fresh()
	kp.Private.Modulus = new(big.Int).Add(kp.Private.Modulus, big.NewInt(2))
	require.ErrorIs(t, kp.Validate(), rsa.ErrInvalidKeyPair)

	kp = fresh()
	kp.Q = kp.P
	require.ErrorIs(t, kp.Validate(), rsa.ErrDegenerateKeyPair)

	kp = fresh()
	kp.Lambda = new(big.Int).Mul(kp.Lambda, big.NewInt(2))
	require.ErrorIs(t, kp.Validate(), rsa.ErrInvalidKeyPair)

	kp = fresh()
	kp.Private.Exponent = nil
	require.ErrorIs(t, kp.Validate(), rsa.ErrInvalidKeyPair)

	var nilPair *rsa.KeyPair
	require.ErrorIs(t, nilPair.Validate(), rsa.ErrInvalidKeyPair)
}

func TestZeroize(t *testing.T) {
	kp, err := rsa.Config{Random: numtheory.NewSeededReader(2)}.GenerateKeyPair(context.Background(), 64)
	require.NoError(t, err)
	n := new(big.Int).Set(kp.Public.Modulus)
	e := new(big.Int).Set(kp.Public.Exponent)

	kp.Zeroize()

	require.Zero(t, kp.Private.Exponent.Sign())
	require.Zero(t, kp.P.Sign())
	require.Zero(t, kp.Q.Sign())
	require.Zero(t, kp.Lambda.Sign())
	require.Zero(t, kp.Public.Modulus.Cmp(n))
	require.Zero(t, kp.Public.Exponent.Cmp(e))

	var nilKey *rsa.PrivateKey
	nilKey.Zeroize()
}
