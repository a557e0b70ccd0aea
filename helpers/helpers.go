// Package helpers implements utility functionality common to the edkey
// packages: PEM armor around the DER key containers and human-readable
// public-key fingerprints.
package helpers

import (
	"crypto/sha256"
	"encoding/pem"
	"fmt"

	"github.com/tv42/zbase32"

	cferr "github.com/cloudflare/edkey/errors"
	"github.com/cloudflare/edkey/helpers/derhelpers"
	"github.com/cloudflare/edkey/key"
)

// PEM block types for the two container formats.
const (
	privateKeyPEMType = "PRIVATE KEY"
	publicKeyPEMType  = "PUBLIC KEY"
)

// EncodeSigningKeyPEM serializes sk to its PKCS#8 DER container and wraps it
// in a PRIVATE KEY PEM block.
func EncodeSigningKeyPEM(sk *key.SigningKey) ([]byte, error) {
	der, err := derhelpers.MarshalEd25519SigningKey(sk)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: privateKeyPEMType, Bytes: der}), nil
}

// ParseSigningKeyPEM decodes a PRIVATE KEY PEM block and parses the PKCS#8
// DER container inside it.
func ParseSigningKeyPEM(in []byte) (*key.SigningKey, error) {
	block, _ := pem.Decode(in)
	if block == nil {
		return nil, cferr.Wrap(cferr.ContainerError, cferr.DecodeFailed,
			fmt.Errorf("no PEM data found"))
	}
	if block.Type != privateKeyPEMType {
		return nil, cferr.Wrap(cferr.ContainerError, cferr.DecodeFailed,
			fmt.Errorf("expected a %s block, found %s", privateKeyPEMType, block.Type))
	}
	return derhelpers.ParseEd25519SigningKey(block.Bytes)
}

// EncodeVerificationKeyPEM serializes vk to its SPKI DER container and wraps
// it in a PUBLIC KEY PEM block.
func EncodeVerificationKeyPEM(vk *key.VerificationKey) ([]byte, error) {
	der, err := derhelpers.MarshalEd25519PublicKey(vk)
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: der}), nil
}

// ParseVerificationKeyPEM decodes a PUBLIC KEY PEM block and parses the SPKI
// DER container inside it.
func ParseVerificationKeyPEM(in []byte) (*key.VerificationKey, error) {
	block, _ := pem.Decode(in)
	if block == nil {
		return nil, cferr.Wrap(cferr.ContainerError, cferr.DecodeFailed,
			fmt.Errorf("no PEM data found"))
	}
	if block.Type != publicKeyPEMType {
		return nil, cferr.Wrap(cferr.ContainerError, cferr.DecodeFailed,
			fmt.Errorf("expected a %s block, found %s", publicKeyPEMType, block.Type))
	}
	return derhelpers.ParseEd25519PublicKey(block.Bytes)
}

// Fingerprint returns a short human-readable identifier for vk: the zbase32
// encoding of the SHA-256 digest of the compressed public key. It is stable
// across processes and safe to log.
func Fingerprint(vk *key.VerificationKey) string {
	sum := sha256.Sum256(vk.Bytes())
	return zbase32.EncodeToString(sum[:])
}
