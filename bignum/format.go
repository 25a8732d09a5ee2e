package bignum

import "strings"

// String implements fmt.Stringer, formatting z in decimal.
func (z *Int) String() string {
	return z.ToDecimal()
}

// ToDecimal renders z in decimal, with a leading '-' for negative values,
// via repeated division by 10.
func (z *Int) ToDecimal() string {
	if z.IsZero() {
		return "0"
	}
	neg := z.IsNegative()
	var mag Int
	mag.Abs(z)

	ten := FromInt64(10)
	var digits []byte
	for !mag.IsZero() {
		q, r, err := divMod(&mag, ten)
		if err != nil {
			break
		}
		digits = append(digits, byte('0')+byte(r.limbs[0]))
		mag = q
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

const hexDigits = "0123456789ABCDEF"

// ToHex renders z as a hexadecimal string: "0x" followed by the
// most-significant non-zero limb without leading zeros and every
// remaining limb zero-padded to 16 digits, matching the original source's
// toHexString. Negative values are negated first and prefixed with '-',
// mirroring ToDecimal and the original source (qbignum.hpp's
// toHexString: "if (isNegative()) { result += '-'; temp = -temp; }").
func (z *Int) ToHex() string {
	if z.IsZero() {
		return "0x00"
	}
	neg := z.IsNegative()
	var mag Int
	mag.Abs(z)

	top := Words - 1
	for top > 0 && mag.limbs[top] == 0 {
		top--
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("0x")
	writeHexLimb(&b, mag.limbs[top], true)
	for i := top - 1; i >= 0; i-- {
		writeHexLimb(&b, mag.limbs[i], false)
	}
	return b.String()
}

func writeHexLimb(b *strings.Builder, w uint64, trimLeading bool) {
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[w&0xF]
		w >>= 4
	}
	if !trimLeading {
		b.Write(buf[:])
		return
	}
	i := 0
	for i < 15 && buf[i] == '0' {
		i++
	}
	b.Write(buf[i:])
}

// DebugWords renders the raw per-limb hexadecimal dump of z, most
// significant limb first, matching the original source's toWordString
// debugging helper.
func (z *Int) DebugWords() string {
	var b strings.Builder
	for i := Words - 1; i >= 0; i-- {
		var buf [16]byte
		w := z.limbs[i]
		for j := 15; j >= 0; j-- {
			buf[j] = hexDigits[w&0xF]
			w >>= 4
		}
		b.Write(buf[:])
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
