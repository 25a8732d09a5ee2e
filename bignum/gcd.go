package bignum

// GCD sets z to the greatest common divisor of x and y (always
// non-negative) using the binary GCD algorithm (Stein's algorithm),
// operating on magnitudes only, and returns z.
func (z *Int) GCD(x, y *Int) *Int {
	var a, b Int
	a.Abs(x)
	b.Abs(y)

	if a.IsZero() {
		*z = b
		return z
	}
	if b.IsZero() {
		*z = a
		return z
	}

	shift := 0
	for !a.Bit(0) && !b.Bit(0) {
		a.Shr(&a, 1)
		b.Shr(&b, 1)
		shift++
	}
	for !a.Bit(0) {
		a.Shr(&a, 1)
	}
	for !b.IsZero() {
		for !b.Bit(0) {
			b.Shr(&b, 1)
		}
		if a.Gt(&b) {
			a, b = b, a
		}
		b.Sub(&b, &a)
	}
	a.Shl(&a, shift)
	*z = a
	return z
}

// GCDSlow sets z to the greatest common divisor of x and y (always
// non-negative) using the classical Euclidean algorithm (repeated
// floored modulo), and returns z. It is provided alongside the faster
// binary GCD as a simpler, directly-auditable reference implementation.
func (z *Int) GCDSlow(x, y *Int) *Int {
	var a, b Int
	a.Abs(x)
	b.Abs(y)
	for !b.IsZero() {
		r, err := new(Int).Mod(&a, &b)
		if err != nil {
			*z = a
			return z
		}
		a, b = b, *r
	}
	*z = a
	return z
}
