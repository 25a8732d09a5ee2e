// Package bnerrors defines the sentinel error values surfaced by the bignum
// and curve packages. Errors are never recovered or retried internally;
// they are wrapped with context via github.com/pkg/errors and returned to
// the caller unmodified, per spec.md §7.
package bnerrors

import "github.com/pkg/errors"

// Sentinel error kinds. Use errors.Is to test for these across wrapping.
var (
	// ErrInvalidFormat is raised by the decimal/hex parsers on a non-digit
	// character or an empty string.
	ErrInvalidFormat = errors.New("bignum: invalid format")

	// ErrOverflow is raised by the decimal/hex parsers and FromBigInt when
	// a value does not fit in the destination width (the parsers detect it
	// when the parsed magnitude would set the sign bit).
	ErrOverflow = errors.New("bignum: value overflows fixed width")

	// ErrDivisionByZero is raised by division and modulo when the divisor
	// is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrInvalidArgument is raised by mulMod, powMod and inverseMod for a
	// zero modulus, and by Jacobi when n is not odd and positive.
	ErrInvalidArgument = errors.New("bignum: invalid argument")

	// ErrNoInverse is raised by inverseMod when gcd(a, m) != 1.
	ErrNoInverse = errors.New("bignum: no modular inverse exists")

	// ErrIndexOutOfRange names the out-of-bounds limb index error kind. No
	// function returns it at present: Int.Limb and Int.SetLimb report an
	// out-of-range index through their ok result.
	ErrIndexOutOfRange = errors.New("bignum: limb index out of range")

	// ErrNotASquare is raised by tonelli when n is not a quadratic residue
	// modulo p.
	ErrNotASquare = errors.New("bignum: not a quadratic residue")

	// ErrNotPrime is raised by tonelli when the supplied modulus fails the
	// internal Miller-Rabin primality check.
	ErrNotPrime = errors.New("bignum: modulus is not prime")
)

// Wrap attaches context to one of the sentinel errors above while
// preserving errors.Is-compatibility with the sentinel.
func Wrap(err error, context string) error {
	return errors.Wrap(err, context)
}
