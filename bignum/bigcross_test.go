package bignum

import "math/big"

// toBig converts x to a math/big.Int, used to cross-check bignum
// arithmetic against the standard library's arbitrary-precision
// implementation in tests (the teacher's own differential-testing idiom,
// adapted here against math/big rather than a second from-scratch
// implementation since there is only one concrete width in this package).
func toBig(x *Int) *big.Int {
	return x.ToBigInt()
}
