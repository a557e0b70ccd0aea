package key

import (
	"bytes"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	cferr "github.com/cloudflare/edkey/errors"
)

// RFC 8032 section 7.1, TEST 1 and TEST 3.
var rfc8032Vectors = []struct {
	seed, pub, msg, sig string
}{
	{
		seed: "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
		pub:  "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		msg:  "",
		sig: "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155" +
			"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
	},
	{
		seed: "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7",
		pub:  "fc51cd8e6218a1a38da47ed00230f0580816ed13ba3303ac5deb911548908025",
		msg:  "af82",
		sig: "6291d657deec24024827e69c3abe01a30ce548a284743a445e3680d7db5ac3ac" +
			"18ff9b538d16f290ae67f760984dc6594a7c15e9716ed28dc027beceea1ec40a",
	},
}

// The all-zero seed pins the derivation against a fixed, documented key.
const (
	zeroSeedPub      = "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"
	zeroSeedPrefix   = "0a6a85eaa642dac835424b5d7c8d637c00408c7a73da672b7f498521420b6dd3"
	zeroSeedSigEmpty = "8f895b3cafe2c9506039d0e2a66382568004674fe8d237785092e40d6aaf483e" +
		"4fc60168705f31f101596138ce21aa357c0d32a064f423dc3ee4aa3abf53f803"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestRFC8032Vectors(t *testing.T) {
	for i, v := range rfc8032Vectors {
		sk, err := NewSigningKey(mustHex(t, v.seed))
		require.NoError(t, err)
		require.Equal(t, mustHex(t, v.pub), sk.Public().Bytes(), "vector %d public key", i)

		msg := mustHex(t, v.msg)
		sig := sk.Sign(msg)
		require.Equal(t, mustHex(t, v.sig), sig.Bytes(), "vector %d signature", i)
		require.True(t, sk.Public().Verify(msg, sig), "vector %d verify", i)
	}
}

func TestZeroSeedVector(t *testing.T) {
	var seed [SeedSize]byte
	sk := NewSigningKeyFromSeed(seed)

	require.Equal(t, mustHex(t, zeroSeedPub), sk.Public().Bytes())
	require.Equal(t, mustHex(t, zeroSeedPrefix), sk.prefix[:])
	require.Equal(t, mustHex(t, zeroSeedSigEmpty), sk.Sign(nil).Bytes())
}

func TestDerivationDeterministic(t *testing.T) {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		t.Fatal(err)
	}

	a := NewSigningKeyFromSeed(seed)
	b := NewSigningKeyFromSeed(seed)

	if a.seed != b.seed || a.prefix != b.prefix {
		t.Fatal("derived fields differ for equal seeds")
	}
	if a.s.Equal(b.s) != 1 {
		t.Fatal("derived scalars differ for equal seeds")
	}
	if !bytes.Equal(a.Public().Bytes(), b.Public().Bytes()) {
		t.Fatal("derived public keys differ for equal seeds")
	}
}

// The private scalar must be the wide reduction of the clamped low half of
// SHA-512(seed): low three bits cleared, bit 255 cleared, bit 254 set.
func TestScalarClamping(t *testing.T) {
	for i := 0; i < 32; i++ {
		var seed [SeedSize]byte
		if _, err := rand.Read(seed[:]); err != nil {
			t.Fatal(err)
		}

		h := sha512.Sum512(seed[:])
		var clamped [64]byte
		copy(clamped[:32], h[:32])
		clamped[0] &= 248
		clamped[31] &= 127
		clamped[31] |= 64

		if clamped[0]&7 != 0 || clamped[31]&128 != 0 || clamped[31]&64 != 64 {
			t.Fatal("clamping transformation broken")
		}

		want, err := edwards25519.NewScalar().SetUniformBytes(clamped[:])
		if err != nil {
			t.Fatal(err)
		}

		sk := NewSigningKeyFromSeed(seed)
		if sk.s.Equal(want) != 1 {
			t.Fatalf("derived scalar is not the reduced clamped digest (seed %x)", seed)
		}
	}
}

func TestSeedRoundTrip(t *testing.T) {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		t.Fatal(err)
	}

	sk := NewSigningKeyFromSeed(seed)
	extracted := sk.Seed()
	require.Equal(t, seed, extracted)

	// Re-derivation from the extracted seed is idempotent.
	sk2 := NewSigningKeyFromSeed(extracted)
	require.Equal(t, sk.Public().Bytes(), sk2.Public().Bytes())
	require.Equal(t, sk.Sign([]byte("round trip")).Bytes(), sk2.Sign([]byte("round trip")).Bytes())
}

func TestSeedLengthRejected(t *testing.T) {
	for _, n := range []int{0, 31, 33} {
		_, err := NewSigningKey(make([]byte, n))
		if err == nil {
			t.Fatalf("length %d accepted", n)
		}
		var kerr *cferr.Error
		if !errors.As(err, &kerr) {
			t.Fatalf("length %d: unexpected error type %T", n, err)
		}
		if kerr.ErrorCode != int(cferr.KeyError)+int(cferr.InvalidLength) {
			t.Fatalf("length %d: got code %d", n, kerr.ErrorCode)
		}
	}
}

func TestSignDeterministic(t *testing.T) {
	sk, err := GenerateSigningKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("attack at dawn")
	require.Equal(t, sk.Sign(msg).Bytes(), sk.Sign(msg).Bytes())
}

func TestVerifyRejects(t *testing.T) {
	sk, err := GenerateSigningKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("a message")
	sig := sk.Sign(msg)
	vk := sk.Public()

	require.True(t, vk.Verify(msg, sig))
	require.False(t, vk.Verify([]byte("another message"), sig))

	bad := sig
	bad.R[0] ^= 0x01
	require.False(t, vk.Verify(msg, bad))

	bad = sig
	bad.S[0] ^= 0x01
	require.False(t, vk.Verify(msg, bad))

	other, err := GenerateSigningKey(rand.Reader)
	require.NoError(t, err)
	require.False(t, other.Public().Verify(msg, sig))
}

func TestVerificationKeyFromBytes(t *testing.T) {
	sk, err := GenerateSigningKey(rand.Reader)
	require.NoError(t, err)

	vk, err := NewVerificationKey(sk.Public().Bytes())
	require.NoError(t, err)

	msg := []byte("reconstructed key")
	require.True(t, vk.Verify(msg, sk.Sign(msg)))

	_, err = NewVerificationKey(make([]byte, 31))
	require.Error(t, err)

	// 32 bytes that do not decode to a curve point: y = 2 is canonical,
	// but (y^2-1)/(dy^2+1) is a quadratic non-residue, so no x exists.
	notAPoint := make([]byte, 32)
	notAPoint[0] = 0x02
	_, err = NewVerificationKey(notAPoint)
	require.Error(t, err)
	var kerr *cferr.Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, int(cferr.KeyError)+int(cferr.MalformedKey), kerr.ErrorCode)
}

func TestSignatureWireFormat(t *testing.T) {
	sk, err := GenerateSigningKey(rand.Reader)
	require.NoError(t, err)

	sig := sk.Sign([]byte("wire"))
	b := sig.Bytes()
	require.Len(t, b, SignatureSize)
	require.Equal(t, sig.R[:], b[:32])
	require.Equal(t, sig.S[:], b[32:])

	parsed, err := NewSignature(b)
	require.NoError(t, err)
	require.Equal(t, sig, parsed)

	_, err = NewSignature(b[:63])
	require.Error(t, err)
}

func TestGenerateSigningKey(t *testing.T) {
	// A deterministic source must produce the key derived from its bytes.
	seed := bytes.Repeat([]byte{0x42}, SeedSize)
	sk, err := GenerateSigningKey(bytes.NewReader(seed))
	require.NoError(t, err)

	var want [SeedSize]byte
	copy(want[:], seed)
	require.Equal(t, NewSigningKeyFromSeed(want).Public().Bytes(), sk.Public().Bytes())

	// A short source fails with a generation error, not a partial key.
	_, err = GenerateSigningKey(bytes.NewReader(seed[:16]))
	require.Error(t, err)
	var kerr *cferr.Error
	require.ErrorAs(t, err, &kerr)
	require.Equal(t, int(cferr.KeyError)+int(cferr.GenerationFailed), kerr.ErrorCode)
}

func TestZeroize(t *testing.T) {
	var seed [SeedSize]byte
	if _, err := rand.Read(seed[:]); err != nil {
		t.Fatal(err)
	}

	sk := NewSigningKeyFromSeed(seed)
	sk.Zeroize()

	var zero [SeedSize]byte
	require.Equal(t, zero, sk.seed)
	require.Equal(t, zero, sk.prefix)
	require.Equal(t, 1, sk.s.Equal(edwards25519.NewScalar()))
}

func TestStringRedactsSecrets(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, SeedSize)
	sk, err := NewSigningKey(seed)
	require.NoError(t, err)

	out := sk.String()
	require.NotContains(t, out, hex.EncodeToString(seed))
	require.Contains(t, out, "redacted")
	require.NotEmpty(t, sk.Public().String())
}
