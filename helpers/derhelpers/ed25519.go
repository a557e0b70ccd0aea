// Package derhelpers implements the DER container codec for Ed25519 keys:
// PKCS#8 (RFC 5958) private-key-info structures for signing keys and
// subject-public-key-info (RFC 5280) structures for verification keys, both
// tagged with the Ed25519 algorithm identifier of RFC 8410.
package derhelpers

import (
	"bytes"
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"

	cferr "github.com/cloudflare/edkey/errors"
	"github.com/cloudflare/edkey/key"
)

// ed25519OID is the Ed25519 algorithm identifier 1.3.101.112 from RFC 8410.
// Its parameters field must be absent.
var ed25519OID = asn1.ObjectIdentifier{1, 3, 101, 112}

// RFC 8410 section 7 double-wraps the key: the PKCS#8 privateKey OCTET
// STRING contains another OCTET STRING holding the raw 32-byte seed, so a
// decoded privateKey field always starts with these two bytes (tag 0x04,
// length 0x20). Only this one fixed-length case is in scope, so it is
// checked as a constant rather than parsed.
var innerOctetPrefix = []byte{0x04, 0x20}

type algorithmIdentifier struct {
	Algorithm asn1.ObjectIdentifier
}

type privateKeyInfo struct {
	Version    int
	Algorithm  algorithmIdentifier
	PrivateKey []byte
}

type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// MarshalEd25519SigningKey serializes sk's seed into a DER-encoded PKCS#8
// private-key-info structure.
func MarshalEd25519SigningKey(sk *key.SigningKey) ([]byte, error) {
	seed := sk.Seed()
	wrapped := make([]byte, 0, len(innerOctetPrefix)+key.SeedSize)
	wrapped = append(wrapped, innerOctetPrefix...)
	wrapped = append(wrapped, seed[:]...)

	der, err := asn1.Marshal(privateKeyInfo{
		Version:    0,
		Algorithm:  algorithmIdentifier{Algorithm: ed25519OID},
		PrivateKey: wrapped,
	})
	if err != nil {
		return nil, cferr.Wrap(cferr.ContainerError, cferr.Unknown, err)
	}
	return der, nil
}

// ParseEd25519SigningKey deserializes a DER-encoded PKCS#8 private-key-info
// structure into a fully derived signing key. A wrong algorithm identifier,
// wrong inner framing, or a payload that is not exactly 32 bytes fails; a
// key is never partially populated.
func ParseEd25519SigningKey(der []byte) (*key.SigningKey, error) {
	input := cryptobyte.String(der)
	var inner, algorithm, privateKey cryptobyte.String
	var version int
	var oid asn1.ObjectIdentifier

	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&version) ||
		!inner.ReadASN1(&algorithm, cbasn1.SEQUENCE) ||
		!algorithm.ReadASN1ObjectIdentifier(&oid) {
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}
	if version != 0 {
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}
	if !oid.Equal(ed25519OID) {
		return nil, cferr.New(cferr.ContainerError, cferr.AlgorithmMismatch)
	}
	if !algorithm.Empty() {
		// RFC 8410 section 3: parameters must be absent.
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}
	if !inner.ReadASN1(&privateKey, cbasn1.OCTET_STRING) || !inner.Empty() {
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}

	if len(privateKey) < len(innerOctetPrefix) ||
		!bytes.Equal(privateKey[:len(innerOctetPrefix)], innerOctetPrefix) {
		return nil, cferr.New(cferr.ContainerError, cferr.MalformedFraming)
	}
	seed := privateKey[len(innerOctetPrefix):]
	if len(seed) != key.SeedSize {
		return nil, cferr.New(cferr.ContainerError, cferr.MalformedFraming)
	}

	return key.NewSigningKey(seed)
}

// MarshalEd25519PublicKey serializes vk into a DER-encoded
// subject-public-key-info structure.
func MarshalEd25519PublicKey(vk *key.VerificationKey) ([]byte, error) {
	pub := vk.Bytes()
	der, err := asn1.Marshal(subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{Algorithm: ed25519OID},
		PublicKey: asn1.BitString{Bytes: pub, BitLength: 8 * len(pub)},
	})
	if err != nil {
		return nil, cferr.Wrap(cferr.ContainerError, cferr.Unknown, err)
	}
	return der, nil
}

// ParseEd25519PublicKey deserializes a DER-encoded subject-public-key-info
// structure into a verification key.
func ParseEd25519PublicKey(der []byte) (*key.VerificationKey, error) {
	input := cryptobyte.String(der)
	var inner, algorithm cryptobyte.String
	var oid asn1.ObjectIdentifier
	var pub asn1.BitString

	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1(&algorithm, cbasn1.SEQUENCE) ||
		!algorithm.ReadASN1ObjectIdentifier(&oid) {
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}
	if !oid.Equal(ed25519OID) {
		return nil, cferr.New(cferr.ContainerError, cferr.AlgorithmMismatch)
	}
	if !algorithm.Empty() {
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}
	if !inner.ReadASN1BitString(&pub) || !inner.Empty() {
		return nil, cferr.New(cferr.ContainerError, cferr.DecodeFailed)
	}

	raw := pub.RightAlign()
	if pub.BitLength != 8*key.PublicKeySize {
		return nil, cferr.New(cferr.ContainerError, cferr.MalformedFraming)
	}
	return key.NewVerificationKey(raw)
}
