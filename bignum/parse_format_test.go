package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromDecimalRoundTrip(t *testing.T) {
	cases := []string{"0", "123", "-123", "+42", "999999999999999999"}
	for _, s := range cases {
		z, err := FromDecimal(s)
		require.NoError(t, err, s)
		got := z.ToDecimal()
		want := s
		if want == "+42" {
			want = "42"
		}
		require.Equal(t, want, got, s)
	}
}

func TestFromDecimalInvalid(t *testing.T) {
	cases := []string{"", "-", "12a3", "1 2"}
	for _, s := range cases {
		_, err := FromDecimal(s)
		require.Error(t, err, s)
	}
}

func TestFromHexRoundTrip(t *testing.T) {
	z, err := FromHex("0x1A")
	require.NoError(t, err)
	require.True(t, z.Eq(FromInt64(26)))
	require.Equal(t, "0x1A", z.ToHex())
}

func TestFromHexOverflow(t *testing.T) {
	tooLong := "0x1"
	for i := 0; i < Words*16; i++ {
		tooLong += "0"
	}
	_, err := FromHex(tooLong)
	require.Error(t, err)
}

func TestToHexNegativeRoundTrip(t *testing.T) {
	require.Equal(t, "-0x5", FromInt64(-5).ToHex())

	z, err := FromHex("-0x1A")
	require.NoError(t, err)
	require.True(t, z.Eq(FromInt64(-26)))
	require.Equal(t, "-0x1A", z.ToHex())
}

func TestToHexZero(t *testing.T) {
	require.Equal(t, "0x00", Zero().ToHex())
}

func TestDebugWords(t *testing.T) {
	z := FromInt64(1)
	words := z.DebugWords()
	require.NotEmpty(t, words)
}
