// Package key implements Ed25519 signing keys: deterministic expansion of a
// 32-byte seed into a private scalar, nonce prefix and cached public key,
// and deterministic RFC 8032 signatures over arbitrary messages. All curve
// arithmetic is delegated to filippo.io/edwards25519.
package key

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	cferr "github.com/cloudflare/edkey/errors"
)

const (
	// SeedSize is the size, in bytes, of the seed every other field of a
	// SigningKey is derived from.
	SeedSize = 32

	// PublicKeySize is the size, in bytes, of a compressed public key.
	PublicKeySize = 32

	// SignatureSize is the size, in bytes, of a signature.
	SignatureSize = 64
)

// SigningKey is an Ed25519 signing key. This is also called a secret key by
// other implementations.
//
// The scalar, prefix and verification key are pure functions of the seed:
// two signing keys built from equal seeds are indistinguishable in every
// derived field. A SigningKey is safe for concurrent use by multiple
// goroutines as long as Zeroize is not called.
type SigningKey struct {
	seed   [SeedSize]byte
	s      *edwards25519.Scalar
	prefix [32]byte
	vk     VerificationKey
}

// GenerateSigningKey creates a signing key from 32 bytes of the given
// cryptographically secure random source. This is the only place entropy
// enters the package; derivation and signing are deterministic.
func GenerateSigningKey(rand io.Reader) (*SigningKey, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, cferr.Wrap(cferr.KeyError, cferr.GenerationFailed, err)
	}
	return NewSigningKeyFromSeed(seed), nil
}

// NewSigningKey creates a signing key from a seed slice, which must be
// exactly 32 bytes. Any other length fails with an invalid-length error;
// the slice is never truncated or padded.
func NewSigningKey(slice []byte) (*SigningKey, error) {
	if len(slice) != SeedSize {
		return nil, cferr.Wrap(cferr.KeyError, cferr.InvalidLength,
			fmt.Errorf("seed must be %d bytes, have %d", SeedSize, len(slice)))
	}
	var seed [SeedSize]byte
	copy(seed[:], slice)
	return NewSigningKeyFromSeed(seed), nil
}

// NewSigningKeyFromSeed expands seed into a full signing key. The expansion
// follows RFC 8032: the low half of SHA-512(seed) is clamped and reduced to
// the private scalar, the high half becomes the nonce prefix, and the public
// key A = [s]B is computed once and cached together with its negation.
func NewSigningKeyFromSeed(seed [SeedSize]byte) *SigningKey {
	h := sha512.Sum512(seed[:])
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		panic("edkey: internal error: setting scalar failed")
	}

	sk := &SigningKey{seed: seed, s: s}
	copy(sk.prefix[:], h[32:])
	wipe(h[:])

	A := new(edwards25519.Point).ScalarBaseMult(s)
	sk.vk.A = A
	sk.vk.minusA = new(edwards25519.Point).Negate(A)
	copy(sk.vk.aBytes[:], A.Bytes())
	return sk
}

// Seed returns the 32-byte seed. Rebuilding a signing key from it yields
// identical derived fields.
func (sk *SigningKey) Seed() [SeedSize]byte {
	return sk.seed
}

// Public returns the verification key corresponding to sk. The value is
// cached at construction time, so this is cheap.
func (sk *SigningKey) Public() *VerificationKey {
	return &sk.vk
}

// Sign creates a signature on message using sk. Ed25519 signing is
// deterministic: signing the same message with the same key twice yields
// byte-identical signatures, and no randomness is consumed.
func (sk *SigningKey) Sign(message []byte) Signature {
	// r = H(prefix || message) mod l
	nh := sha512.New()
	nh.Write(sk.prefix[:])
	nh.Write(message)
	r, err := edwards25519.NewScalar().SetUniformBytes(nh.Sum(nil))
	if err != nil {
		panic("edkey: internal error: setting nonce scalar failed")
	}

	RBytes := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	// k = H(R || A || message) mod l
	ch := sha512.New()
	ch.Write(RBytes)
	ch.Write(sk.vk.aBytes[:])
	ch.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(ch.Sum(nil))
	if err != nil {
		panic("edkey: internal error: setting challenge scalar failed")
	}

	// S = r + k*s mod l
	S := edwards25519.NewScalar().MultiplyAdd(k, sk.s, r)

	var sig Signature
	copy(sig.R[:], RBytes)
	copy(sig.S[:], S.Bytes())
	return sig
}

// Zeroize overwrites the seed, scalar and nonce prefix with zeros. The
// public key is left intact. Go's collector gives no timing guarantee, so
// callers should invoke Zeroize as soon as the key's useful life ends; the
// key must not be used for signing afterwards.
func (sk *SigningKey) Zeroize() {
	wipe(sk.seed[:])
	wipe(sk.prefix[:])
	sk.s.Set(edwards25519.NewScalar())
}

// String renders the key for logs without exposing secret material: only a
// SHA-256 fingerprint of the public key is included.
func (sk *SigningKey) String() string {
	sum := sha256.Sum256(sk.vk.aBytes[:])
	return fmt.Sprintf("SigningKey{pub: %x, seed: <redacted>}", sum[:8])
}
