package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// floorDivModBig is floorDiv/floorMod's big.Int counterpart: math/big's
// Div/Mod implement Euclidean division (remainder always non-negative),
// not the floored semantics divMod implements, so it can't be used
// directly as an oracle.
func floorDivModBig(a, b *big.Int) (q, r *big.Int) {
	q, r = new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
		r.Add(r, b)
	}
	return q, r
}

// floorDiv and floorMod reproduce Go's math.Floor-style division for int64
// operands, used as an independent oracle for divMod's floored semantics.
func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if (r != 0) && ((r < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	r := a % b
	if (r != 0) && ((r < 0) != (b < 0)) {
		r += b
	}
	return r
}

func TestDivModFloored(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{7, 3}, {-7, 3}, {7, -3}, {-7, -3},
		{6, 3}, {-6, 3}, {6, -3}, {-6, -3},
		{1, 5}, {-1, 5}, {1, -5},
	}
	for _, c := range cases {
		x, y := FromInt64(c.a), FromInt64(c.b)
		q, r, err := divMod(x, y)
		require.NoError(t, err)
		require.Equal(t, floorDiv(c.a, c.b), toBig(&q).Int64(), "case %+v quotient", c)
		require.Equal(t, floorMod(c.a, c.b), toBig(&r).Int64(), "case %+v remainder", c)
	}
}

// TestDivModWorkedExample covers spec.md §8's literal worked example:
// 315414563456347657352375 / 24524, cross-checked against math/big's
// floored-division equivalent (see floorDivModBig).
func TestDivModWorkedExample(t *testing.T) {
	x, err := FromDecimal("315414563456347657352375")
	require.NoError(t, err)
	y, err := FromDecimal("24524")
	require.NoError(t, err)

	q, r, err := divMod(x, y)
	require.NoError(t, err)
	require.Equal(t, "12861464828590264938", toBig(&q).String())
	require.Equal(t, "12863", toBig(&r).String())

	bigX, _ := new(big.Int).SetString("315414563456347657352375", 10)
	bigY := big.NewInt(24524)
	wantQ, wantR := floorDivModBig(bigX, bigY)

	require.Equal(t, wantQ.String(), toBig(&q).String())
	require.Equal(t, wantR.String(), toBig(&r).String())
}

func TestDivByZero(t *testing.T) {
	_, err := new(Int).Div(FromInt64(1), FromInt64(0))
	require.Error(t, err)
}

func TestRemainderTakesDivisorSign(t *testing.T) {
	_, r, err := divMod(FromInt64(7), FromInt64(-3))
	require.NoError(t, err)
	require.True(t, r.IsNegative() || r.IsZero())
}
