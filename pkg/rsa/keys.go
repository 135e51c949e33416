package rsa

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/hsiuhsiu/toyrsa-go/pkg/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/numtheory"
)

// PublicKey is the pair (n, e).
type PublicKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// PrivateKey is the pair (n, d). It is a distinct type from PublicKey so the
// two cannot be swapped at a call site.
type PrivateKey struct {
	Modulus  *big.Int
	Exponent *big.Int
}

// KeyPair is the output of key generation. P, Q and Lambda are kept so the
// pair can be re-checked with Validate; treat them as secret.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey

	P, Q   *big.Int
	Lambda *big.Int // lcm(P-1, Q-1)
}

func (k PublicKey) String() string {
	return fmt.Sprintf("PublicKey(n=%s, e=%s)", k.Modulus, k.Exponent)
}

// String never prints the private exponent.
func (k PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(n=%s, d=%s)", k.Modulus, logging.Placeholder())
}

// Zeroize overwrites the private exponent in place and sets it to zero. It
// is best effort: copies made by math/big during arithmetic are not reached.
func (k *PrivateKey) Zeroize() {
	if k == nil {
		return
	}
	zeroizeInt(k.Exponent)
}

// Zeroize wipes the private exponent, both primes and Lambda. The public key
// is left intact.
func (kp *KeyPair) Zeroize() {
	if kp == nil {
		return
	}
	kp.Private.Zeroize()
	zeroizeInt(kp.P)
	zeroizeInt(kp.Q)
	zeroizeInt(kp.Lambda)
}

func zeroizeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	clear(words)
	x.SetInt64(0)
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(words)
}

// Validate re-checks the invariants of a generated pair: n = P*Q with P != Q
// both prime, Lambda = lcm(P-1, Q-1), 2 <= e < Lambda, gcd(e, Lambda) = 1,
// 0 <= d < Lambda and e*d = 1 mod Lambda.
func (kp *KeyPair) Validate() error {
	if kp == nil {
		return invalid("nil key pair")
	}
	n, e := kp.Public.Modulus, kp.Public.Exponent
	d := kp.Private.Exponent
	if n == nil || e == nil || d == nil || kp.Private.Modulus == nil || kp.P == nil || kp.Q == nil || kp.Lambda == nil {
		return invalid("missing component")
	}
	if n.Cmp(kp.Private.Modulus) != 0 {
		return invalid("public and private moduli differ")
	}
	if kp.P.Cmp(kp.Q) == 0 {
		return &Error{Op: "Validate", Err: ErrDegenerateKeyPair}
	}
	if !kp.P.ProbablyPrime(20) || !kp.Q.ProbablyPrime(20) {
		return invalid("factor is not prime")
	}
	if new(big.Int).Mul(kp.P, kp.Q).Cmp(n) != 0 {
		return invalid("modulus is not P*Q")
	}

	lambda, err := numtheory.LCM(new(big.Int).Sub(kp.P, one), new(big.Int).Sub(kp.Q, one))
	if err != nil {
		return &Error{Op: "Validate", Err: err}
	}
	if lambda.Cmp(kp.Lambda) != 0 {
		return invalid("lambda is not lcm(P-1, Q-1)")
	}
	if e.Cmp(two) < 0 || e.Cmp(lambda) >= 0 {
		return invalid("public exponent outside [2, lambda)")
	}
	if numtheory.GCD(e, lambda).Cmp(one) != 0 {
		return invalid("public exponent shares a factor with lambda")
	}
	if d.Sign() < 0 || d.Cmp(lambda) >= 0 {
		return invalid("private exponent outside [0, lambda)")
	}
	ed := new(big.Int).Mul(e, d)
	if ed.Mod(ed, lambda).Cmp(one) != 0 {
		return invalid("e*d is not 1 mod lambda")
	}
	return nil
}
