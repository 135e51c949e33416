package rsa

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
)

var (
	// ErrInvalidModulus indicates a key whose modulus is missing or below 1.
	ErrInvalidModulus = numtheory.ErrInvalidModulus

	// ErrInvalidBitLength indicates a requested bit length below 1.
	ErrInvalidBitLength = numtheory.ErrInvalidBitLength

	// ErrSearchExhausted indicates Config.MaxAttempts was reached.
	ErrSearchExhausted = numtheory.ErrSearchExhausted

	// ErrMessageOutOfRange indicates a message or ciphertext outside [0, n).
	ErrMessageOutOfRange = errors.New("rsa: message out of range")

	// ErrDegenerateKeyPair indicates the primes cannot form a usable key:
	// they are equal, or the Carmichael value leaves no public exponent.
	ErrDegenerateKeyPair = errors.New("rsa: degenerate key pair")

	// ErrInvalidKeyPair indicates a key pair that fails Validate.
	ErrInvalidKeyPair = errors.New("rsa: invalid key pair")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rsa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalid(reason string) error {
	return &Error{Op: "Validate", Err: fmt.Errorf("%w: %s", ErrInvalidKeyPair, reason)}
}
