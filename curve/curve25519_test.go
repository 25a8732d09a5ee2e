package curve

import (
	"encoding/hex"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func TestCurve25519Parameters(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	c := NewCurve25519(40, src)
	// 2^255 - 19
	require.Equal(t, "57896044618658097711785492504343953926634992332820282019728792003956564819949", c.P.ToDecimal())
	require.Equal(t, "486662", c.A.ToDecimal())
}

// TestGeneratePublicKeyMatchesXCrypto cross-checks the from-scratch
// affine-coordinate Curve25519 scalar multiplication against the standard
// library's X25519 (a projective Montgomery-ladder implementation): both
// compute the same group operation over the same curve and base point, so
// for any RFC 7748-clamped scalar they must agree on the resulting
// u-coordinate.
func TestGeneratePublicKeyMatchesXCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var priv [32]byte
	for i := range priv {
		priv[i] = byte(rng.Intn(256))
	}

	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	require.NoError(t, err)

	privHex := hex.EncodeToString(priv[:])
	ourPubHex, err := Curve25519GeneratePublicKey(privHex, 40, rng)
	require.NoError(t, err)

	ourDigits := strings.TrimPrefix(strings.ToLower(ourPubHex), "0x")
	ourDigits = strings.Repeat("0", 64-len(ourDigits)) + ourDigits

	require.Equal(t, hex.EncodeToString(pub), ourDigits)
}
