package bignum

// Cmp returns -1, 0 or +1 as z is numerically less than, equal to, or
// greater than x, treating both as signed values, matching the sign-aware
// comparison operators in the original source.
func (z *Int) Cmp(x *Int) int {
	zNeg := z.IsNegative()
	xNeg := x.IsNegative()
	if zNeg != xNeg {
		if zNeg {
			return -1
		}
		return 1
	}
	for i := Words - 1; i >= 0; i-- {
		if z.limbs[i] > x.limbs[i] {
			return 1
		}
		if z.limbs[i] < x.limbs[i] {
			return -1
		}
	}
	return 0
}

// Eq reports whether z == x.
func (z *Int) Eq(x *Int) bool { return z.Cmp(x) == 0 }

// Lt reports whether z < x.
func (z *Int) Lt(x *Int) bool { return z.Cmp(x) < 0 }

// Le reports whether z <= x.
func (z *Int) Le(x *Int) bool { return z.Cmp(x) <= 0 }

// Gt reports whether z > x.
func (z *Int) Gt(x *Int) bool { return z.Cmp(x) > 0 }

// Ge reports whether z >= x.
func (z *Int) Ge(x *Int) bool { return z.Cmp(x) >= 0 }

// CompareAbs compares the absolute values of z and x, ignoring sign,
// matching QBigNum::compareAbs in the original source. It returns -1, 0 or
// +1.
func (z *Int) CompareAbs(x *Int) int {
	var za, xa Int
	za.Abs(z)
	xa.Abs(x)
	for i := Words - 1; i >= 0; i-- {
		if za.limbs[i] > xa.limbs[i] {
			return 1
		}
		if za.limbs[i] < xa.limbs[i] {
			return -1
		}
	}
	return 0
}
