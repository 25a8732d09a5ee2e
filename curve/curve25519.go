package curve

import (
	"github.com/jsign/qbignum/bignum"
	"github.com/jsign/qbignum/internal/bnerrors"
	"github.com/jsign/qbignum/internal/bnrand"
	"github.com/jsign/qbignum/internal/utils"
)

// mustIntFromString parses a decimal or 0x-prefixed hex literal into an
// Int, panicking on failure. Grounded on internal/utils.InitIntFromString,
// whose own doc notes that a panicking parse is the appropriate choice for
// package-level numeric constants: there is no caller to hand an error to,
// and a malformed literal here is a programming error, not input to
// validate.
func mustIntFromString(s string) *bignum.Int {
	bi := utils.InitIntFromString(s)
	z, err := bignum.FromBigInt(bi)
	if err != nil {
		panic(utils.ErrorPrefix + "curve constant does not fit in bignum.Int: " + s)
	}
	return z
}

// Curve25519 is the Montgomery curve used by the Curve25519 key-agreement
// scheme, matching the original source's Curve25519 class: curve
// coefficient a = 0x76d06, prime modulus p = 2^255 - 19, base point G and
// group order n.
type Curve25519 struct {
	*MontgomeryCurve
	G Point
	N bignum.Int
}

// NewCurve25519 constructs the Curve25519 instantiation. mrRounds and src
// parameterize the Miller-Rabin primality check used internally by
// PointFromX's Tonelli-Shanks square root.
func NewCurve25519(mrRounds int, src bnrand.Source) *Curve25519 {
	a := mustIntFromString("0x76d06")
	p := mustIntFromString("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	gx := mustIntFromString("0x09")
	gy := mustIntFromString("0x20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9")
	n := mustIntFromString("0x1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")

	c := &Curve25519{
		MontgomeryCurve: NewMontgomeryCurve(a, p, mrRounds, src),
		G:               Point{X: *gx, Y: *gy},
	}
	c.N.Set(n)
	return c
}

// ScalarMultiplyBase computes k*G, the curve's base point scaled by k.
func (c *Curve25519) ScalarMultiplyBase(k *bignum.Int) (Point, error) {
	return c.ScalarMultiply(k, c.G)
}

// GeneratePublicKey derives the Curve25519 public key for the given
// hex-encoded private key, matching Curve25519::generatePulicKey in the
// original source: the key is parsed, byte-reversed, clamped per RFC 7748
// (clear bits 0-2, clear bit 255, set bit 254), scalar-multiplied against
// the base point, and the resulting x-coordinate is byte-reversed back
// into hex.
func Curve25519GeneratePublicKey(privateKeyHex string, mrRounds int, src bnrand.Source) (string, error) {
	c := NewCurve25519(mrRounds, src)

	priKey, err := bignum.FromHex(privateKeyHex)
	if err != nil {
		return "", bnerrors.Wrap(err, "GeneratePublicKey")
	}
	priKey.ReverseByteOrder(256 / 8)

	priKey.ClearBit(0)
	priKey.ClearBit(1)
	priKey.ClearBit(2)
	priKey.ClearBit(255)
	priKey.SetBit(254)

	point, err := c.ScalarMultiply(priKey, c.G)
	if err != nil {
		return "", bnerrors.Wrap(err, "GeneratePublicKey")
	}

	point.X.ReverseByteOrder(256 / 8)
	return point.X.ToHex(), nil
}
