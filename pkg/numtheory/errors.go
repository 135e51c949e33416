package numtheory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModulus indicates a modulus below 1, or an lcm of two zeros.
	ErrInvalidModulus = errors.New("numtheory: invalid modulus")

	// ErrNegativeExponent indicates a negative exponent was passed to PowMod.
	ErrNegativeExponent = errors.New("numtheory: negative exponent")

	// ErrInvalidBitLength indicates a requested bit length below 1.
	ErrInvalidBitLength = errors.New("numtheory: invalid bit length")

	// ErrSearchExhausted indicates a randomized search hit its attempt cap.
	ErrSearchExhausted = errors.New("numtheory: search exhausted")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("numtheory.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// errorf creates a new Error
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
