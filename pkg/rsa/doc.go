// Package rsa implements textbook RSA on top of package numtheory: key
// generation, encryption and decryption of integers.
//
// This is a teaching implementation. There is no padding, no constant-time
// arithmetic and no key encoding; do not use it to protect real data.
//
// # Key Generation
//
//	kp, err := rsa.Config{}.GenerateKeyPair(ctx, 64)
//	c, err := rsa.Encrypt(&kp.Public, big.NewInt(200))
//	m, err := rsa.Decrypt(&kp.Private, c)
//
// The private exponent is the inverse of e modulo the Carmichael value
// lambda(n) = lcm(p-1, q-1), so Decrypt(Encrypt(m)) = m for every m in
// [0, n). Config makes the random source explicit; pass a seeded reader from
// numtheory.NewSeededReader to get the same keys on every run.
//
// # Errors
//
// Operations return *Error values wrapping one of the sentinel errors below,
// so callers branch with errors.Is:
//
//   - ErrMessageOutOfRange: message or ciphertext outside [0, n)
//   - ErrInvalidModulus: missing modulus or modulus below 1
//   - ErrDegenerateKeyPair: the prime pair cannot form a key
//   - ErrSearchExhausted: Config.MaxAttempts was reached
//   - ErrInvalidKeyPair: KeyPair.Validate found a broken invariant
package rsa
