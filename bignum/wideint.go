package bignum

import "math/bits"

// wideWords is the limb count of the internal double-width scratch type,
// realizing "2N" from spec.md §4.5/§4.7/§4.11 against the concrete N=512
// chosen for Int (see DESIGN.md).
const wideWords = 2 * Words

// wideInt is an internal unsigned-magnitude scratch type used only by the
// widening multiply and mulMod, exactly as spec.md §4.11 describes: "This
// is used by mulMod to move between N and 2N widths safely." It is never
// exported; all public arithmetic stays inside the fixed N=512 width.
type wideInt struct {
	limbs [wideWords]uint64
}

// isZero reports whether w is zero.
func (w *wideInt) isZero() bool {
	for _, l := range w.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// bitLength returns the position of the highest set bit (0 for zero).
func (w *wideInt) bitLength() int {
	for i := wideWords - 1; i >= 0; i-- {
		if w.limbs[i] != 0 {
			return 64*i + (64 - leadingZeros64(w.limbs[i]))
		}
	}
	return 0
}

// widenTo copies z (sign-extended) into the double-width scratch w,
// matching the cross-width copy of spec.md §4.11: the extra high limbs
// are filled with all-ones when z is negative. Since wideInt has twice the
// width of Int, this copy can never overflow (there is no destination
// sign bit in play at the wideInt's own width, since wideInt is only ever
// used as an unsigned-magnitude intermediate — callers are responsible for
// tracking sign separately, as mulMod does).
func (z *Int) widenTo(w *wideInt) {
	var fill uint64
	if z.IsNegative() {
		fill = ^uint64(0)
	}
	for i := 0; i < wideWords; i++ {
		if i < Words {
			w.limbs[i] = z.limbs[i]
		} else {
			w.limbs[i] = fill
		}
	}
}

// narrowTo copies the low Words limbs of w back into z, matching the
// cross-width copy of spec.md §4.11. ok is false, and z is left unchanged,
// if the discarded high limbs are not a pure sign extension of the
// retained low limbs, i.e. the value does not fit back into Int's width;
// mulModInts then reduces the full double-width value instead.
func (w *wideInt) narrowTo(z *Int) (ok bool) {
	var t Int
	for i := 0; i < Words; i++ {
		t.limbs[i] = w.limbs[i]
	}
	var expect uint64
	if t.IsNegative() {
		expect = ^uint64(0)
	}
	for i := Words; i < wideWords; i++ {
		if w.limbs[i] != expect {
			return false
		}
	}
	*z = t
	return true
}

// addWide sets w = a + b (mod 2^(2*Bits)), treated as unsigned magnitude.
func (w *wideInt) addWide(a, b *wideInt) {
	var t wideInt
	var carry uint64
	for i := 0; i < wideWords; i++ {
		t.limbs[i], carry = bits.Add64(a.limbs[i], b.limbs[i], carry)
	}
	*w = t
}

// subWide sets w = a - b (mod 2^(2*Bits)), treated as unsigned magnitude.
func (w *wideInt) subWide(a, b *wideInt) {
	var t wideInt
	var borrow uint64
	for i := 0; i < wideWords; i++ {
		t.limbs[i], borrow = bits.Sub64(a.limbs[i], b.limbs[i], borrow)
	}
	*w = t
}

// cmpWide compares two wideInt values as unsigned magnitudes.
func cmpWide(a, b *wideInt) int {
	for i := wideWords - 1; i >= 0; i-- {
		if a.limbs[i] > b.limbs[i] {
			return 1
		}
		if a.limbs[i] < b.limbs[i] {
			return -1
		}
	}
	return 0
}

// shrWideBy right-shifts w (unsigned, logical) by the given bit count.
// mulModInts does not call it; it reduces via reduceWideMagnitude.
func (w *wideInt) shrWideBy(shiftBits int) {
	if shiftBits <= 0 {
		return
	}
	words := shiftBits / 64
	rem := shiftBits % 64
	if words >= wideWords {
		*w = wideInt{}
		return
	}
	if words > 0 {
		for i := 0; i < wideWords-words; i++ {
			w.limbs[i] = w.limbs[i+words]
		}
		for i := wideWords - words; i < wideWords; i++ {
			w.limbs[i] = 0
		}
	}
	if rem > 0 {
		for i := 0; i < wideWords-1; i++ {
			w.limbs[i] = (w.limbs[i] >> uint(rem)) | (w.limbs[i+1] << uint(64-rem))
		}
		w.limbs[wideWords-1] >>= uint(rem)
	}
}
