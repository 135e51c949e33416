package rsa

import (
	"fmt"
	"math/big"

	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
)

// Encrypt returns message^e mod n. The message must lie in [0, n).
func Encrypt(pub *PublicKey, message *big.Int) (*big.Int, error) {
	if pub == nil {
		return nil, &Error{Op: "Encrypt", Err: ErrInvalidModulus}
	}
	return apply("Encrypt", message, pub.Exponent, pub.Modulus)
}

// Decrypt returns ciphertext^d mod n. The ciphertext must lie in [0, n).
func Decrypt(priv *PrivateKey, ciphertext *big.Int) (*big.Int, error) {
	if priv == nil {
		return nil, &Error{Op: "Decrypt", Err: ErrInvalidModulus}
	}
	return apply("Decrypt", ciphertext, priv.Exponent, priv.Modulus)
}

func apply(op string, value, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Cmp(one) < 0 {
		return nil, &Error{Op: op, Err: ErrInvalidModulus}
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: modulus has %d bits", ErrMessageOutOfRange, modulus.BitLen())}
	}
	if exponent == nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: missing exponent", ErrInvalidKeyPair)}
	}
	r, err := numtheory.PowMod(value, exponent, modulus)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return r, nil
}
