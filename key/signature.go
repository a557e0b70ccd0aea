package key

import (
	"fmt"

	cferr "github.com/cloudflare/edkey/errors"
)

// Signature is a 64-byte Ed25519 signature: the compressed nonce point R
// followed by the response scalar S.
type Signature struct {
	R [32]byte
	S [32]byte
}

// NewSignature creates a Signature from a 64-byte wire encoding.
func NewSignature(slice []byte) (Signature, error) {
	var sig Signature
	if len(slice) != SignatureSize {
		return sig, cferr.Wrap(cferr.KeyError, cferr.InvalidLength,
			fmt.Errorf("signature must be %d bytes, have %d", SignatureSize, len(slice)))
	}
	copy(sig.R[:], slice[:32])
	copy(sig.S[:], slice[32:])
	return sig, nil
}

// Bytes returns the 64-byte wire encoding R || S.
func (sig Signature) Bytes() []byte {
	b := make([]byte, 0, SignatureSize)
	b = append(b, sig.R[:]...)
	return append(b, sig.S[:]...)
}
