package bignum

import "github.com/jsign/qbignum/internal/bnrand"

// Randomize fills z with numBits random bits (zero elsewhere, masking the
// top partial limb so no stray bits beyond numBits survive), clears the
// sign bit, and then negates the result if negative is true. It matches
// the original source's setRandomUnsafe, and is not cryptographically
// secure — see internal/bnrand.
func (z *Int) Randomize(numBits int, negative bool, src bnrand.Source) *Int {
	var t Int
	if numBits > Bits-1 {
		numBits = Bits - 1
	}
	fullWords := numBits / 64
	rem := numBits % 64
	for i := 0; i < fullWords; i++ {
		t.limbs[i] = src.Uint64()
	}
	if rem > 0 && fullWords < Words {
		mask := (uint64(1) << uint(rem)) - 1
		t.limbs[fullWords] = src.Uint64() & mask
	}
	t.limbs[Words-1] &^= uint64(1) << 63
	if negative {
		t.negate()
	}
	*z = t
	return z
}

// RandomInRange sets z to a pseudo-random value in the inclusive range
// [min, max] and returns z (spec.md §4.10: range = max - min + 1). Per
// spec.md's documented "Open Question" resolution, this uses a
// straightforward modulo reduction of a freshly randomized value spanning
// the range's bit length; it is not rejection-sampled and is therefore not
// perfectly uniform when the range's width isn't a power of two (a bias
// spec.md explicitly accepts rather than hides behind rejection sampling).
func (z *Int) RandomInRange(min, max *Int, src bnrand.Source) *Int {
	var span Int
	span.Sub(max, min)
	if span.IsNegative() {
		*z = *min
		return z
	}

	// max - min + 1 overflows the fixed width exactly when span already
	// equals MaxInt() (min == 0, max == MaxInt()): adding 1 would wrap to
	// MinInt(). MaxInt() is 2^(Bits-1)-1, so drawing Bits-1 random bits
	// already covers [0, MaxInt()] = [0, span] exactly, with no modulo
	// (and so no bias) needed.
	if span.Eq(MaxInt()) {
		var raw Int
		raw.Randomize(span.BitLength(), false, src)
		var t Int
		t.Add(min, &raw)
		*z = t
		return z
	}

	span.AddScalar(&span, 1)
	bitLen := span.BitLength()
	if bitLen == 0 {
		bitLen = 1
	}
	var raw Int
	raw.Randomize(bitLen, false, src)

	_, reduced, err := divMod(&raw, &span)
	if err != nil {
		*z = *min
		return z
	}
	var t Int
	t.Add(min, &reduced)
	*z = t
	return z
}
