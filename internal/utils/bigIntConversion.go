package utils

import (
	"math/big"
)

// ErrorPrefix is prepended to panic messages originating from this package.
const ErrorPrefix = "qbignum / internal / utils: "

// InitIntFromString initializes a [*big.Int] from a given string.
// This internally uses [*big.Int]'s SetString and understands exactly those string formats.
// This implies that the given string can be decimal, hex, octal or binary, but needs to be prefixed if not decimal.
//
// This essentially is equivalent to [*big.Int]'s SetString method, except that it panics on error.
//
// The use-case for this function is initializing (global constant, really) *big.Int's from string constants. As such, panic on failure is appropriate.
func InitIntFromString(input string) *big.Int {
	var t *big.Int = big.NewInt(0)
	var success bool
	t, success = t.SetString(input, 0)
	// Note: panic is the appropriate error handling here. Also, since this code is only run during package import, there is actually no way to catch it.
	if !success {
		panic(ErrorPrefix + "string used to initialize big.Int not recognized as a valid number: " + input)
	}
	return t
}

// ToIntConvertible is implemented by any type that can render itself as a
// math/big.Int, used to cross-check domain-specific fixed-width integer
// types against the standard library's arbitrary-precision arithmetic.
type ToIntConvertible interface {
	ToBigInt() *big.Int
}

// IsEqualAsBigInt compares two ToIntConvertible values via their big.Int
// representation, independent of their concrete fixed-width encoding.
func IsEqualAsBigInt(x, y ToIntConvertible) bool {
	return x.ToBigInt().Cmp(y.ToBigInt()) == 0
}
