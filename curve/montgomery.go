package curve

import (
	"github.com/jsign/qbignum/bignum"
	"github.com/jsign/qbignum/internal/bnerrors"
	"github.com/jsign/qbignum/internal/bnrand"
)

// MontgomeryCurve is a Montgomery-form elliptic curve y^2 = x^3 + a*x^2 +
// x over a prime field, in affine coordinates, matching the original
// source's templated MontgomeryCurve<Bits> class (with the template
// parameter fixed, per DESIGN.md, to bignum.Int's one concrete width).
type MontgomeryCurve struct {
	A, P bignum.Int

	mrRounds int
	src      bnrand.Source
	cache    bignum.TonelliCache
}

// NewMontgomeryCurve constructs a curve with the given coefficient a and
// prime modulus p. mrRounds and src parameterize the Miller-Rabin
// primality check and Tonelli-Shanks square root used by PointFromX.
func NewMontgomeryCurve(a, p *bignum.Int, mrRounds int, src bnrand.Source) *MontgomeryCurve {
	c := &MontgomeryCurve{mrRounds: mrRounds, src: src}
	c.A.Set(a)
	c.P.Set(p)
	return c
}

func (c *MontgomeryCurve) mulMod(x, y *bignum.Int) (bignum.Int, error) {
	var r bignum.Int
	_, err := r.MulMod(x, y, &c.P)
	return r, err
}

func (c *MontgomeryCurve) powMod(x, e *bignum.Int) (bignum.Int, error) {
	var r bignum.Int
	_, err := r.PowMod(x, e, &c.P)
	return r, err
}

func (c *MontgomeryCurve) modP(x *bignum.Int) (bignum.Int, error) {
	var r bignum.Int
	_, err := r.Mod(x, &c.P)
	return r, err
}

// Double computes 2*point, matching MontgomeryCurve::pointDouble in the
// original source. Doubling the identity (y == 0) returns the identity.
func (c *MontgomeryCurve) Double(point Point) (Point, error) {
	if point.Y.IsZero() {
		return Point{}, nil
	}
	three := bignum.FromInt64(3)
	two := bignum.FromInt64(2)
	minusOne := bignum.FromInt64(-1)

	var x3 bignum.Int
	x3.Mul(&point.X, three)
	numerator, err := c.mulMod(&point.X, &x3)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}

	var x2 bignum.Int
	x2.Mul(&point.X, two)
	aTerm, err := c.mulMod(&c.A, &x2)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}
	numerator.Add(&numerator, &aTerm)
	numerator.Inc()
	numerator, err = c.modP(&numerator)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}

	var y2 bignum.Int
	y2.Mul(&point.Y, two)
	denominator, err := c.powMod(&y2, minusOne)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}

	lamb, err := c.mulMod(&numerator, &denominator)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}

	var result Point
	xSq, err := c.mulMod(&lamb, &lamb)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}
	var sub bignum.Int
	sub.Add(&x2, &c.A)
	xSq.Sub(&xSq, &sub)
	result.X, err = c.modP(&xSq)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}

	var diff bignum.Int
	diff.Sub(&result.X, &point.X)
	ySub, err := c.mulMod(&lamb, &diff)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}
	ySub.Add(&ySub, &point.Y)
	ySub.Neg(&ySub)
	result.Y, err = c.modP(&ySub)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Double")
	}

	return result, nil
}

// Add computes point1 + point2, matching MontgomeryCurve::pointAdd in the
// original source. Adding the identity to either operand returns the
// other operand unchanged, and adding a point to itself returns
// Double(point).
func (c *MontgomeryCurve) Add(point1, point2 Point) (Point, error) {
	if point1.IsIdentity() {
		return point2, nil
	}
	if point2.IsIdentity() {
		return point1, nil
	}
	if point1.Eq(point2) {
		return c.Double(point1)
	}

	var numRaw bignum.Int
	numRaw.Sub(&point2.Y, &point1.Y)
	numerator, err := c.modP(&numRaw)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}

	var denomRaw bignum.Int
	denomRaw.Sub(&point2.X, &point1.X)
	denominator, err := new(bignum.Int).InverseMod(&denomRaw, &c.P)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}

	lamb, err := c.mulMod(&numerator, denominator)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}

	var result Point
	xSq, err := c.mulMod(&lamb, &lamb)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}
	xSq.Sub(&xSq, &point1.X)
	xSq.Sub(&xSq, &point2.X)
	xSq.Sub(&xSq, &c.A)
	result.X, err = c.modP(&xSq)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}

	var diff bignum.Int
	diff.Sub(&point1.X, &result.X)
	ySub, err := c.mulMod(&lamb, &diff)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}
	ySub.Sub(&ySub, &point1.Y)
	result.Y, err = c.modP(&ySub)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "Add")
	}

	return result, nil
}

// ScalarMultiply computes k*point via double-and-add, matching
// MontgomeryCurve::scalarMultiply in the original source. Not
// constant-time.
func (c *MontgomeryCurve) ScalarMultiply(k *bignum.Int, point Point) (Point, error) {
	result := Point{}
	current := point
	var kCopy bignum.Int
	kCopy.Set(k)

	for !kCopy.IsZero() {
		if kCopy.Bit(0) {
			r, err := c.Add(result, current)
			if err != nil {
				return Point{}, bnerrors.Wrap(err, "ScalarMultiply")
			}
			result = r
		}
		d, err := c.Double(current)
		if err != nil {
			return Point{}, bnerrors.Wrap(err, "ScalarMultiply")
		}
		current = d
		kCopy.Shr(&kCopy, 1)
	}
	return result, nil
}

// PointFromX recovers a point on the curve given its x-coordinate,
// matching MontgomeryCurve::getPointGivenX in the original source.
// Returns bnerrors.ErrNotASquare if x is not the x-coordinate of any
// point on the curve.
func (c *MontgomeryCurve) PointFromX(x *bignum.Int) (Point, error) {
	var ySq bignum.Int
	if _, err := ySq.PowMod(x, bignum.FromInt64(3), &c.P); err != nil {
		return Point{}, bnerrors.Wrap(err, "PointFromX")
	}
	xx, err := c.mulMod(x, x)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "PointFromX")
	}
	aTerm, err := c.mulMod(&c.A, &xx)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "PointFromX")
	}
	ySq.Add(&ySq, &aTerm)
	ySq.Add(&ySq, x)
	ySqReduced, err := c.modP(&ySq)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "PointFromX")
	}

	sym, err := bignum.Legendre(&ySqReduced, &c.P)
	if err != nil {
		return Point{}, bnerrors.Wrap(err, "PointFromX")
	}
	if sym != 1 {
		return Point{}, bnerrors.ErrNotASquare
	}

	var y bignum.Int
	if _, err := y.SqrtMod(&ySqReduced, &c.P, &c.cache, c.mrRounds, c.src); err != nil {
		return Point{}, bnerrors.Wrap(err, "PointFromX")
	}

	return Point{X: *x, Y: y}, nil
}

// IsOnCurve reports whether point satisfies the curve equation, matching
// MontgomeryCurve::isOnCurve in the original source.
func (c *MontgomeryCurve) IsOnCurve(point Point) (bool, error) {
	left, err := c.mulMod(&point.Y, &point.Y)
	if err != nil {
		return false, bnerrors.Wrap(err, "IsOnCurve")
	}
	var right bignum.Int
	if _, err := right.PowMod(&point.X, bignum.FromInt64(3), &c.P); err != nil {
		return false, bnerrors.Wrap(err, "IsOnCurve")
	}
	xx, err := c.mulMod(&point.X, &point.X)
	if err != nil {
		return false, bnerrors.Wrap(err, "IsOnCurve")
	}
	aTerm, err := c.mulMod(&c.A, &xx)
	if err != nil {
		return false, bnerrors.Wrap(err, "IsOnCurve")
	}
	right.Add(&right, &aTerm)
	right.Add(&right, &point.X)
	rightReduced, err := c.modP(&right)
	if err != nil {
		return false, bnerrors.Wrap(err, "IsOnCurve")
	}
	return left.Eq(&rightReduced), nil
}
