package bignum

import (
	"encoding/binary"
	"math/big"

	"github.com/jsign/qbignum/internal/bnerrors"
	"github.com/jsign/qbignum/internal/utils"
)

// ToBigInt converts z to a math/big.Int, generalizing the teacher's
// internal/utils.UIntarrayToInt (which hardcodes a 4-limb unsigned layout)
// to Int's 8-limb signed one: the magnitude is built limb-by-limb
// big-endian, then negated if z is negative.
func (z *Int) ToBigInt() *big.Int {
	var abs Int
	abs.Abs(z)
	mag := new(big.Int)
	for i := Words - 1; i >= 0; i-- {
		mag.Lsh(mag, 64)
		mag.Or(mag, new(big.Int).SetUint64(abs.limbs[i]))
	}
	if z.IsNegative() {
		mag.Neg(mag)
	}
	return mag
}

// FromBigInt converts x into a fresh Int, the inverse of ToBigInt,
// generalizing internal/utils.BigIntToUIntArray to a signed, 8-limb
// layout. It reports bnerrors.ErrOverflow if x does not fit in Bits-1
// magnitude bits (one bit is reserved for the sign).
func FromBigInt(x *big.Int) (*Int, error) {
	mag := new(big.Int).Abs(x)
	if mag.BitLen() > Bits-1 {
		return nil, bnerrors.ErrOverflow
	}
	var buf [Words * 8]byte
	mag.FillBytes(buf[:])
	z := &Int{}
	for i := 0; i < Words; i++ {
		start := len(buf) - (i+1)*8
		z.limbs[i] = binary.BigEndian.Uint64(buf[start : start+8])
	}
	if x.Sign() < 0 {
		z.negate()
	}
	return z, nil
}

// compile-time assertions that Int participates in the teacher's
// internal/utils generic conventions: Clonable (type-preserving copies)
// and ToIntConvertible (cross-checking against math/big in tests).
var (
	_ utils.Clonable[*Int]   = (*Int)(nil)
	_ utils.ToIntConvertible = (*Int)(nil)
)
