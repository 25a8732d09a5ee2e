package bignum

import "math/bits"

// Add sets z = x + y (mod 2^Bits) and returns z, propagating carry across
// the full limb chain. Overflow wraps silently, matching
// QBigNum::operator+= in the original source; detecting it is the
// caller's responsibility (spec.md §4.3).
func (z *Int) Add(x, y *Int) *Int {
	var t Int
	var carry uint64
	for i := 0; i < Words; i++ {
		t.limbs[i], carry = bits.Add64(x.limbs[i], y.limbs[i], carry)
	}
	*z = t
	return z
}

// Sub sets z = x - y (mod 2^Bits) and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	var t Int
	var borrow uint64
	for i := 0; i < Words; i++ {
		t.limbs[i], borrow = bits.Sub64(x.limbs[i], y.limbs[i], borrow)
	}
	*z = t
	return z
}

// scalarMagnitude splits a signed 64-bit scalar into (|s|, negative),
// routing through uint64 arithmetic so that math.MinInt64 (whose negation
// would overflow int64) is handled correctly.
func scalarMagnitude(s int64) (mag uint64, negative bool) {
	if s < 0 {
		return uint64(-(s+1)) + 1, true
	}
	return uint64(s), false
}

func addMagnitude(t *Int, mag uint64) {
	carry := mag
	for i := 0; i < Words && carry != 0; i++ {
		t.limbs[i], carry = bits.Add64(t.limbs[i], carry, 0)
	}
}

func subMagnitude(t *Int, mag uint64) {
	borrow := mag
	for i := 0; i < Words; i++ {
		cur := t.limbs[i]
		diff := cur - borrow
		t.limbs[i] = diff
		if cur < borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
}

// AddScalar sets z = x + s for a signed 64-bit scalar s and returns z. A
// negative addend is redirected to subtraction of its absolute value, and
// vice versa, matching QBigNum::operator+=(int64_t) in the original
// source.
func (z *Int) AddScalar(x *Int, s int64) *Int {
	mag, negative := scalarMagnitude(s)
	t := *x
	if negative {
		subMagnitude(&t, mag)
	} else {
		addMagnitude(&t, mag)
	}
	*z = t
	return z
}

// SubScalar sets z = x - s for a signed 64-bit scalar s and returns z.
func (z *Int) SubScalar(x *Int, s int64) *Int {
	mag, negative := scalarMagnitude(s)
	t := *x
	if negative {
		addMagnitude(&t, mag)
	} else {
		subMagnitude(&t, mag)
	}
	*z = t
	return z
}
