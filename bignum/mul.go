package bignum

import "math/bits"

// mulFull computes the full 2*Words-limb schoolbook product of two
// non-negative magnitudes x and y (both treated as unsigned Words-limb
// values), matching the accumulation loop of QBigNum::operator*=(const
// QBigNum&) in the original source, generalized to keep the entire
// double-width result rather than truncating early.
func mulFull(x, y *Int) [2 * Words]uint64 {
	var result [2 * Words]uint64
	for i := 0; i < Words; i++ {
		if x.limbs[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < Words; j++ {
			hi, lo := bits.Mul64(x.limbs[i], y.limbs[j])
			var c1, c2 uint64
			sum, c1 := bits.Add64(lo, result[i+j], 0)
			sum, c2 = bits.Add64(sum, carry, 0)
			result[i+j] = sum
			carry = hi + c1 + c2
		}
		result[i+Words] += carry
	}
	return result
}

// Mul sets z = x * y, truncating to the fixed Words-limb width (mod
// 2^Bits), and returns z. Per spec.md §4.5, mixed-sign operands are
// handled by pre-negating each negative operand to its magnitude,
// multiplying magnitudes, and negating the result if exactly one operand
// was negative.
func (z *Int) Mul(x, y *Int) *Int {
	var xa, ya Int
	xa.Abs(x)
	ya.Abs(y)
	negative := x.IsNegative() != y.IsNegative()

	full := mulFull(&xa, &ya)
	var t Int
	for i := 0; i < Words; i++ {
		t.limbs[i] = full[i]
	}
	if negative {
		t.negate()
	}
	*z = t
	return z
}

// mulWide computes the exact double-width product of x and y (handling
// sign the same way Mul does) into the internal wideInt scratch w. This
// preserves the exact mathematical product before modular reduction, used
// internally by mulMod (spec.md §4.5, "Widening N×N → 2N").
func mulWide(w *wideInt, x, y *Int) (negative bool) {
	var xa, ya Int
	xa.Abs(x)
	ya.Abs(y)
	negative = x.IsNegative() != y.IsNegative()
	full := mulFull(&xa, &ya)
	for i := range full {
		w.limbs[i] = full[i]
	}
	return negative
}

// MulScalar sets z = x * s for a signed 64-bit scalar s and returns z. If
// s is negative, x is negated first and then multiplied by |s|, matching QBigNum::operator*=(int64_t) in the original source.
//
// Open question (spec.md §9): if x has bits set in the sign position of
// the top limb, negating before multiplying can silently lose precision.
// This is reproduced as-is, undefined for that edge case, matching the
// original.
func (z *Int) MulScalar(x *Int, s int64) *Int {
	mag, negative := scalarMagnitude(s)
	var t Int
	t = *x
	if negative {
		t.negate()
	}
	var carry uint64
	for i := 0; i < Words; i++ {
		hi, lo := bits.Mul64(t.limbs[i], mag)
		sum, c := bits.Add64(lo, carry, 0)
		t.limbs[i] = sum
		carry = hi + c
	}
	*z = t
	return z
}
