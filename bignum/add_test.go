package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSubAgainstBig(t *testing.T) {
	cases := []struct{ a, b int64 }{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {0, 0}, {1000000, -999999},
	}
	for _, c := range cases {
		x, y := FromInt64(c.a), FromInt64(c.b)

		var sum Int
		sum.Add(x, y)
		require.Equal(t, c.a+c.b, toBig(&sum).Int64())

		var diff Int
		diff.Sub(x, y)
		require.Equal(t, c.a-c.b, toBig(&diff).Int64())
	}
}

func TestAddSubScalar(t *testing.T) {
	x := FromInt64(100)
	var z Int
	z.AddScalar(x, -30)
	require.True(t, z.Eq(FromInt64(70)))

	z.SubScalar(x, -30)
	require.True(t, z.Eq(FromInt64(130)))
}

func TestAddOverflowWraps(t *testing.T) {
	max := MaxInt()
	one := FromInt64(1)
	var z Int
	z.Add(max, one)
	require.True(t, z.Eq(MinInt()))
}
