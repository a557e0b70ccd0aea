package key

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"

	cferr "github.com/cloudflare/edkey/errors"
)

// VerificationKey is an Ed25519 verification (public) key. Alongside the
// point A it caches the negated point -A, which lets Verify run a single
// double-scalar multiplication against the base point.
type VerificationKey struct {
	A      *edwards25519.Point
	minusA *edwards25519.Point
	aBytes [PublicKeySize]byte
}

// NewVerificationKey creates a verification key from a compressed 32-byte
// point encoding.
func NewVerificationKey(slice []byte) (*VerificationKey, error) {
	if len(slice) != PublicKeySize {
		return nil, cferr.Wrap(cferr.KeyError, cferr.InvalidLength,
			fmt.Errorf("public key must be %d bytes, have %d", PublicKeySize, len(slice)))
	}
	A, err := new(edwards25519.Point).SetBytes(slice)
	if err != nil {
		return nil, cferr.Wrap(cferr.KeyError, cferr.MalformedKey, err)
	}

	vk := &VerificationKey{
		A:      A,
		minusA: new(edwards25519.Point).Negate(A),
	}
	copy(vk.aBytes[:], slice)
	return vk, nil
}

// Bytes returns the compressed 32-byte encoding of the public key point.
func (vk *VerificationKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, vk.aBytes[:])
	return b
}

// Verify reports whether sig is a valid signature on message under vk.
//
// The check recomputes the challenge k = H(R || A || message) and tests
// [S]B + [k](-A) == R, reusing the cached negation. The comparison is on
// the compressed encodings, so a non-canonical R never verifies.
func (vk *VerificationKey) Verify(message []byte, sig Signature) bool {
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig.S[:])
	if err != nil {
		return false
	}

	ch := sha512.New()
	ch.Write(sig.R[:])
	ch.Write(vk.aBytes[:])
	ch.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(ch.Sum(nil))
	if err != nil {
		return false
	}

	R := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, vk.minusA, S)
	return subtle.ConstantTimeCompare(R.Bytes(), sig.R[:]) == 1
}

// String renders the key's SHA-256 fingerprint; the full encoding is public
// but long, and the fingerprint is what operators grep for.
func (vk *VerificationKey) String() string {
	sum := sha256.Sum256(vk.aBytes[:])
	return fmt.Sprintf("VerificationKey{%x}", sum[:8])
}
