package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulModAgainstBig(t *testing.T) {
	x, y, m := FromInt64(123456789), FromInt64(987654321), FromInt64(1000000007)
	var z Int
	_, err := z.MulMod(x, y, m)
	require.NoError(t, err)

	want := new(big.Int).Mul(big.NewInt(123456789), big.NewInt(987654321))
	want.Mod(want, big.NewInt(1000000007))
	require.Equal(t, want.Int64(), toBig(&z).Int64())
}

func TestPowModAgainstBig(t *testing.T) {
	base, exp, m := FromInt64(7), FromInt64(100), FromInt64(1000000007)
	var z Int
	_, err := z.PowMod(base, exp, m)
	require.NoError(t, err)

	want := new(big.Int).Exp(big.NewInt(7), big.NewInt(100), big.NewInt(1000000007))
	require.Equal(t, want.Int64(), toBig(&z).Int64())
}

func TestPowModNegativeExponent(t *testing.T) {
	base, exp, m := FromInt64(7), FromInt64(-1), FromInt64(1000000007)
	var z Int
	_, err := z.PowMod(base, exp, m)
	require.NoError(t, err)

	var check Int
	_, err = check.MulMod(base, &z, m)
	require.NoError(t, err)
	require.True(t, check.Eq(FromInt64(1)))
}

func TestInverseModAgainstBig(t *testing.T) {
	a, m := FromInt64(17), FromInt64(3120)
	var z Int
	_, err := z.InverseMod(a, m)
	require.NoError(t, err)

	want := new(big.Int).ModInverse(big.NewInt(17), big.NewInt(3120))
	require.Equal(t, want.Int64(), toBig(&z).Int64())
}

// TestInverseModWorkedExamples covers spec.md §8's literal worked
// examples: inverseMod(4, 13) == 10, and inverseMod(4, -13) == -3 (a
// negative modulus yields the negative representative: inverse mod |m|,
// then add the original negative m).
func TestInverseModWorkedExamples(t *testing.T) {
	var z Int
	_, err := z.InverseMod(FromInt64(4), FromInt64(13))
	require.NoError(t, err)
	require.True(t, z.Eq(FromInt64(10)))

	var zNeg Int
	_, err = zNeg.InverseMod(FromInt64(4), FromInt64(-13))
	require.NoError(t, err)
	require.True(t, zNeg.Eq(FromInt64(-3)), "inverseMod(4, -13) = %s, want -3", zNeg.String())
}

func TestPowModWorkedExample(t *testing.T) {
	base, m := FromInt64(3014054041), FromInt64(13121)

	var zPos Int
	_, err := zPos.PowMod(base, FromInt64(7210215437), m)
	require.NoError(t, err)
	wantPos := new(big.Int).Exp(big.NewInt(3014054041), big.NewInt(7210215437), big.NewInt(13121))
	require.Equal(t, wantPos.Int64(), toBig(&zPos).Int64())

	var zNeg Int
	_, err = zNeg.PowMod(base, FromInt64(-7210215437), m)
	require.NoError(t, err)

	var check Int
	_, err = check.MulMod(&zPos, &zNeg, m)
	require.NoError(t, err)
	require.True(t, check.Eq(FromInt64(1)), "base^e * base^-e should be 1 mod m")
}

func TestInverseModNoInverse(t *testing.T) {
	a, m := FromInt64(4), FromInt64(8)
	_, err := new(Int).InverseMod(a, m)
	require.Error(t, err)
}

func TestPowModZeroModulus(t *testing.T) {
	_, err := new(Int).PowMod(FromInt64(2), FromInt64(3), FromInt64(0))
	require.Error(t, err)
}
