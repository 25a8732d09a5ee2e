// Package curve implements Montgomery-form elliptic curve arithmetic in
// affine (x, y) coordinates over the fixed-width bignum.Int field, and a
// concrete Curve25519 instantiation with RFC 7748-style key derivation.
//
// This mirrors the original source's examples/montgomerycurve.hpp and
// examples/curve25519.hpp: a plain affine-coordinate implementation, not
// a projective XZ Montgomery ladder. It is not constant-time and is a
// teaching implementation, matching spec.md's Non-goals.
package curve

import "github.com/jsign/qbignum/bignum"

// Point is an affine point on a Montgomery curve. The identity element is
// represented as (0, 0), matching the original source's default-constructed
// Point.
type Point struct {
	X, Y bignum.Int
}

// IsIdentity reports whether p is the curve's identity element.
func (p Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// Eq reports whether p and other represent the same point.
func (p Point) Eq(other Point) bool {
	return p.X.Eq(&other.X) && p.Y.Eq(&other.Y)
}

// String renders p as "(x, y)" in decimal, matching the original source's
// Point::operator QString.
func (p Point) String() string {
	return "(" + p.X.ToDecimal() + ", " + p.Y.ToDecimal() + ")"
}
