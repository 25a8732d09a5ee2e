package bignum

import (
	"github.com/jsign/qbignum/internal/bnerrors"
	"github.com/jsign/qbignum/internal/bnrand"
)

// smallPrimes are trial-divided before Miller-Rabin proper, matching the
// usual cheap pre-filter described in spec.md §4.9.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43,
	47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// Legendre computes the Legendre symbol (a/p) for an odd prime p, as
// a^((p-1)/2) mod p mapped to {-1, 0, 1}.
func Legendre(a, p *Int) (int, error) {
	one := FromInt64(1)
	var exp Int
	exp.Sub(p, one)
	exp.Shr(&exp, 1)
	var r Int
	if _, err := r.PowMod(a, &exp, p); err != nil {
		return 0, bnerrors.Wrap(err, "Legendre")
	}
	switch {
	case r.IsZero():
		return 0, nil
	case r.Eq(one):
		return 1, nil
	default:
		return -1, nil
	}
}

// Jacobi computes the Jacobi symbol (a/n) for odd positive n, via the
// iterative quadratic-reciprocity algorithm (spec.md §4.9). Returns
// bnerrors.ErrInvalidArgument if n is not odd and positive.
func Jacobi(a, n *Int) (int, error) {
	if n.IsNegative() || n.IsZero() || !n.Bit(0) {
		return 0, bnerrors.ErrInvalidArgument
	}
	one := FromInt64(1)
	var nn Int
	nn.Set(n)
	aaPtr, err := new(Int).Mod(a, &nn)
	if err != nil {
		return 0, err
	}
	aa := *aaPtr

	result := 1
	for !aa.IsZero() {
		for !aa.Bit(0) {
			aa.Shr(&aa, 1)
			r := nn.limbs[0] & 7
			if r == 3 || r == 5 {
				result = -result
			}
		}
		aa, nn = nn, aa
		if (aa.limbs[0]&3 == 3) && (nn.limbs[0]&3 == 3) {
			result = -result
		}
		reduced, err := new(Int).Mod(&aa, &nn)
		if err != nil {
			return 0, err
		}
		aa = *reduced
	}
	if nn.Eq(one) {
		return result, nil
	}
	return 0, nil
}

// millerRabin reports whether n is probably prime, using trial division by
// smallPrimes followed by rounds Miller-Rabin witness rounds with random
// bases drawn from src (spec.md §4.9).
func millerRabin(n *Int, rounds int, src bnrand.Source) bool {
	two := FromInt64(2)
	if n.Lt(two) {
		return false
	}
	for _, p := range smallPrimes {
		pi := FromInt64(p)
		if n.Eq(pi) {
			return true
		}
		r, err := new(Int).Mod(n, pi)
		if err != nil || r.IsZero() {
			return n.Eq(pi)
		}
	}

	var nMinus1 Int
	nMinus1.SubScalar(n, 1)
	d := nMinus1
	r := 0
	for !d.Bit(0) {
		d.Shr(&d, 1)
		r++
	}

	nMinus2 := new(Int).SubScalar(n, 2)
	for i := 0; i < rounds; i++ {
		var a Int
		a.RandomInRange(two, nMinus2, src)
		if a.Lt(two) {
			a = *two
		}

		x := new(Int)
		if _, err := x.PowMod(&a, &d, n); err != nil {
			return false
		}
		if x.Eq(FromInt64(1)) || x.Eq(&nMinus1) {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			if _, err := x.MulMod(x, x, n); err != nil {
				return false
			}
			if x.Eq(&nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// IsProbablePrime reports whether n is probably prime using rounds rounds
// of Miller-Rabin (spec.md §4.9).
func (z *Int) IsProbablePrime(rounds int, src bnrand.Source) bool {
	return millerRabin(z, rounds, src)
}

// TonelliCache holds state reused across repeated calls to
// SqrtMod against the same prime modulus: the factored q*2^s
// decomposition and a quadratic non-residue, both expensive to recompute.
// It is caller-owned rather than a package-level global, per the Open
// Question resolution recorded in DESIGN.md.
type TonelliCache struct {
	p        Int
	q        Int
	s        int
	nonResid Int
	valid    bool
}

// SqrtMod computes a square root of a modulo the prime p using the
// Tonelli-Shanks algorithm, reusing cache across calls against the same p,
// and returns it in z. Returns bnerrors.ErrNotPrime if p fails a
// primality check, or bnerrors.ErrNotASquare if a has no square root mod
// p.
func (z *Int) SqrtMod(a, p *Int, cache *TonelliCache, mrRounds int, src bnrand.Source) (*Int, error) {
	if !cache.valid || !cache.p.Eq(p) {
		if !p.IsProbablePrime(mrRounds, src) {
			return nil, bnerrors.ErrNotPrime
		}
		var q Int
		q.SubScalar(p, 1)
		s := 0
		for !q.Bit(0) {
			q.Shr(&q, 1)
			s++
		}
		cache.p = *p
		cache.q = q
		cache.s = s
		cache.valid = false

		two := FromInt64(2)
		var z2 Int
		z2.Set(two)
		for {
			sym, err := Legendre(&z2, p)
			if err != nil {
				return nil, err
			}
			if sym == -1 {
				break
			}
			z2.AddScalar(&z2, 1)
		}
		cache.nonResid = z2
		cache.valid = true
	}

	legA, err := Legendre(a, p)
	if err != nil {
		return nil, err
	}
	if legA == 0 {
		*z = Int{}
		return z, nil
	}
	if legA != 1 {
		return nil, bnerrors.ErrNotASquare
	}

	if cache.s == 1 {
		var exp Int
		exp.AddScalar(p, 1)
		exp.Shr(&exp, 2)
		return z.PowMod(a, &exp, p)
	}

	m := cache.s
	c := new(Int)
	c.PowMod(&cache.nonResid, &cache.q, p)
	var tExp Int
	tExp.AddScalar(&cache.q, 1)
	tExp.Shr(&tExp, 1)
	t := new(Int)
	t.PowMod(a, &cache.q, p)
	r := new(Int)
	r.PowMod(a, &tExp, p)

	one := FromInt64(1)
	for {
		if t.Eq(one) {
			*z = *r
			return z, nil
		}
		i := 0
		tt := new(Int)
		tt.Set(t)
		for !tt.Eq(one) {
			tt.MulMod(tt, tt, p)
			i++
			if i >= m {
				return nil, bnerrors.ErrNotASquare
			}
		}
		b := new(Int)
		b.Set(c)
		for j := 0; j < m-i-1; j++ {
			b.MulMod(b, b, p)
		}
		m = i
		c.MulMod(b, b, p)
		t.MulMod(t, c, p)
		r.MulMod(r, b, p)
	}
}
