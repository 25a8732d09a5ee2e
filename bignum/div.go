package bignum

import (
	"math/bits"

	"github.com/jsign/qbignum/internal/bnerrors"
)

// cmpMag compares two Words(+1)-limb unsigned magnitude arrays of equal
// length.
func cmpMag(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// subMag sets a -= b in place across equal-length unsigned magnitude
// arrays, assuming a >= b.
func subMag(a, b []uint64) {
	var borrow uint64
	for i := 0; i < len(a); i++ {
		a[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
}

// divmodMagnitude performs unsigned, truncated-toward-zero long division of
// two non-negative Words-limb magnitudes via a bit-by-bit restoring
// division loop (the "chunked long-division" of spec.md §4.6, simplified
// to a one-bit chunk per step for a fixed, auditable carry chain): the
// remainder is accumulated in a Words+1-limb scratch to absorb the extra
// bit produced by each left shift before the trial subtraction.
func divmodMagnitude(xa, ya *Int) (q, r Int) {
	var rem [Words + 1]uint64
	var divisor [Words + 1]uint64
	for i := 0; i < Words; i++ {
		divisor[i] = ya.limbs[i]
	}

	for i := Bits - 1; i >= 0; i-- {
		var carry uint64
		if xa.Bit(i) {
			carry = 1
		}
		for j := 0; j < Words+1; j++ {
			newCarry := rem[j] >> 63
			rem[j] = (rem[j] << 1) | carry
			carry = newCarry
		}
		if cmpMag(rem[:], divisor[:]) >= 0 {
			subMag(rem[:], divisor[:])
			q.SetBit(i)
		}
	}
	for i := 0; i < Words; i++ {
		r.limbs[i] = rem[i]
	}
	return q, r
}

// divMod computes the floored quotient and remainder of x / y: the
// remainder is zero or takes the sign of y, matching spec.md §4.6's
// documented floored-division semantics (not C/Go's truncating
// semantics). It returns bnerrors.ErrDivisionByZero if y is zero.
func divMod(x, y *Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, bnerrors.ErrDivisionByZero
	}
	xNeg := x.IsNegative()
	yNeg := y.IsNegative()

	var xa, ya Int
	xa.Abs(x)
	ya.Abs(y)

	truncQ, truncR := divmodMagnitude(&xa, &ya)

	qNeg := xNeg != yNeg
	if !truncR.IsZero() && qNeg {
		truncQ.AddScalar(&truncQ, 1)
		truncR.Sub(&ya, &truncR)
	}

	q = truncQ
	if qNeg && !q.IsZero() {
		q.negate()
	}
	r = truncR
	if yNeg && !r.IsZero() {
		r.negate()
	}
	return q, r, nil
}

// Div sets z = x / y using floored division (rounding toward negative
// infinity) and returns z, or an error if y is zero.
func (z *Int) Div(x, y *Int) (*Int, error) {
	q, _, err := divMod(x, y)
	if err != nil {
		return nil, bnerrors.Wrap(err, "Div")
	}
	*z = q
	return z, nil
}

// Mod sets z = x % y using floored division (the remainder is zero or
// shares y's sign) and returns z, or an error if y is zero.
func (z *Int) Mod(x, y *Int) (*Int, error) {
	_, r, err := divMod(x, y)
	if err != nil {
		return nil, bnerrors.Wrap(err, "Mod")
	}
	*z = r
	return z, nil
}
