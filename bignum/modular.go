package bignum

import "github.com/jsign/qbignum/internal/bnerrors"

// wideBits is the bit width of the internal wideInt scratch type.
const wideBits = wideWords * 64

// reduceWideMagnitude computes dividend mod modAbs (both treated as
// unsigned magnitudes) via the same bit-by-bit restoring division used by
// divmodMagnitude, generalized to the double-width dividend produced by a
// widening multiply (spec.md §4.11).
func reduceWideMagnitude(dividend *wideInt, modAbs *Int) Int {
	var rem [Words + 1]uint64
	var divisor [Words + 1]uint64
	for i := 0; i < Words; i++ {
		divisor[i] = modAbs.limbs[i]
	}
	for i := wideBits - 1; i >= 0; i-- {
		bit := (dividend.limbs[i/64] >> uint(i%64)) & 1
		carry := bit
		for j := 0; j < Words+1; j++ {
			newCarry := rem[j] >> 63
			rem[j] = (rem[j] << 1) | carry
			carry = newCarry
		}
		if cmpMag(rem[:], divisor[:]) >= 0 {
			subMag(rem[:], divisor[:])
		}
	}
	var r Int
	for i := 0; i < Words; i++ {
		r.limbs[i] = rem[i]
	}
	return r
}

// mulModInts computes (x*y) mod mod as a floored-modulo result (the
// remainder is zero or shares mod's sign, exactly like Mod), per spec.md
// §4.5/§4.7. When the exact product already fits within the fixed width it
// is narrowed and reduced directly instead of walking the full
// double-width bit-by-bit reduction, matching spec.md §4.11's "move
// between N and 2N widths" cross-width copy.
func mulModInts(x, y, mod *Int) (Int, error) {
	if mod.IsZero() {
		return Int{}, bnerrors.ErrInvalidArgument
	}
	var w wideInt
	negative := mulWide(&w, x, y)

	var modAbs Int
	modAbs.Abs(mod)

	var remAbs Int
	var narrow Int
	if w.narrowTo(&narrow) {
		var na Int
		na.Abs(&narrow)
		_, r, err := divMod(&na, &modAbs)
		if err != nil {
			return Int{}, err
		}
		remAbs = r
	} else {
		remAbs = reduceWideMagnitude(&w, &modAbs)
	}

	modNeg := mod.IsNegative()
	if !remAbs.IsZero() && negative != modNeg {
		remAbs.Sub(&modAbs, &remAbs)
	}
	result := remAbs
	if modNeg && !result.IsZero() {
		result.negate()
	}
	return result, nil
}

// MulMod sets z = (x*y) mod m and returns z, or an error if m is zero.
func (z *Int) MulMod(x, y, m *Int) (*Int, error) {
	r, err := mulModInts(x, y, m)
	if err != nil {
		return nil, bnerrors.Wrap(err, "MulMod")
	}
	*z = r
	return z, nil
}

// PowMod sets z = base^exp mod m and returns z, using binary
// square-and-multiply. A negative exponent is handled by first computing
// the modular inverse of base and raising that to |exp|, matching spec.md
// §4.7. Returns bnerrors.ErrInvalidArgument if m is zero, or propagates
// bnerrors.ErrNoInverse if base has no inverse mod m and exp is negative.
func (z *Int) PowMod(base, exp, m *Int) (*Int, error) {
	if m.IsZero() {
		return nil, bnerrors.ErrInvalidArgument
	}

	b := *base
	e := *exp
	if e.IsNegative() {
		inv, err := inverseModInts(&b, m)
		if err != nil {
			return nil, bnerrors.Wrap(err, "PowMod")
		}
		b = inv
		e.negate()
	}

	result := *FromInt64(1)
	for i := 0; i < Bits && !e.IsZero(); i++ {
		if e.Bit(0) {
			r, err := mulModInts(&result, &b, m)
			if err != nil {
				return nil, bnerrors.Wrap(err, "PowMod")
			}
			result = r
		}
		sq, err := mulModInts(&b, &b, m)
		if err != nil {
			return nil, bnerrors.Wrap(err, "PowMod")
		}
		b = sq
		e.Shr(&e, 1)
	}
	*z = result
	return z, nil
}

// inverseModInts computes the modular inverse of a mod m via the extended
// Euclidean algorithm, matching spec.md §4.7. m==1 (or -1) yields 0.
// Returns bnerrors.ErrNoInverse if gcd(a, m) != 1.
func inverseModInts(a, mod *Int) (Int, error) {
	if mod.IsZero() {
		return Int{}, bnerrors.ErrInvalidArgument
	}
	var m Int
	m.Abs(mod)
	one := FromInt64(1)
	if m.Eq(one) {
		return Int{}, nil
	}

	a0, err := new(Int).Mod(a, &m)
	if err != nil {
		return Int{}, err
	}

	oldR, r := *a0, m
	oldS, s := *FromInt64(1), *FromInt64(0)

	for !r.IsZero() {
		q, err := new(Int).Div(&oldR, &r)
		if err != nil {
			return Int{}, err
		}

		var qr, tmpR Int
		qr.Mul(q, &r)
		tmpR.Sub(&oldR, &qr)
		oldR, r = r, tmpR

		var qs, tmpS Int
		qs.Mul(q, &s)
		tmpS.Sub(&oldS, &qs)
		oldS, s = s, tmpS
	}

	if !oldR.Eq(FromInt64(1)) && !oldR.Eq(FromInt64(-1)) {
		return Int{}, bnerrors.ErrNoInverse
	}
	if oldR.Eq(FromInt64(-1)) {
		oldS.negate()
	}

	result, err := new(Int).Mod(&oldS, &m)
	if err != nil {
		return Int{}, err
	}

	// spec.md §4.7: if the caller's modulus was negative, the inverse is
	// reported as the negative representative (inverse mod |m|, then add
	// the original negative m), not the non-negative one mod |m|.
	if mod.IsNegative() && !result.IsZero() {
		result.Add(result, mod)
	}
	return *result, nil
}

// InverseMod sets z to the modular inverse of x mod m and returns z.
// Returns bnerrors.ErrNoInverse if no inverse exists.
func (z *Int) InverseMod(x, m *Int) (*Int, error) {
	r, err := inverseModInts(x, m)
	if err != nil {
		return nil, bnerrors.Wrap(err, "InverseMod")
	}
	*z = r
	return z, nil
}
