package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulAgainstBig(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{3, 7}, {-3, 7}, {3, -7}, {-3, -7}, {0, 5}, {123456789, 987654321},
	}
	for _, c := range cases {
		x, y := FromInt64(c.a), FromInt64(c.b)
		var z Int
		z.Mul(x, y)
		want := new(big.Int).Mul(big.NewInt(c.a), big.NewInt(c.b))
		require.Equal(t, want.Int64(), toBig(&z).Int64())
	}
}

func TestMulScalar(t *testing.T) {
	x := FromInt64(21)
	var z Int
	z.MulScalar(x, -2)
	require.True(t, z.Eq(FromInt64(-42)))
}

func TestMulWideNoOverflowNarrows(t *testing.T) {
	x, y := FromInt64(1000), FromInt64(2000)
	var w wideInt
	neg := mulWide(&w, x, y)
	require.False(t, neg)
	var narrow Int
	require.True(t, w.narrowTo(&narrow))
	require.True(t, narrow.Eq(FromInt64(2000000)))
}
