package safeint

import "math/bits"

// Bitwise operations return new values; Int is immutable. Shift counts are
// the caller's responsibility: amounts at or above Bits are not checked and
// follow Go's shift semantics.

// Not returns the bit complement of x.
func (x Int[T]) Not() Int[T] {
	return Int[T]{v: ^x.v}
}

// And returns x AND y.
func (x Int[T]) And(y Int[T]) Int[T] {
	return Int[T]{v: x.v & y.v}
}

// Or returns x OR y.
func (x Int[T]) Or(y Int[T]) Int[T] {
	return Int[T]{v: x.v | y.v}
}

// Xor returns x XOR y.
func (x Int[T]) Xor(y Int[T]) Int[T] {
	return Int[T]{v: x.v ^ y.v}
}

// Shl returns x shifted left by k bits.
func (x Int[T]) Shl(k uint) Int[T] {
	return Int[T]{v: x.v << k}
}

// Shr returns x shifted right by k bits. Signed widths shift arithmetically,
// unsigned widths logically.
func (x Int[T]) Shr(k uint) Int[T] {
	return Int[T]{v: x.v >> k}
}

// CountOnes returns the population count of x's bit pattern.
func (x Int[T]) CountOnes() uint {
	return uint(bits.OnesCount64(ubits(x.v)))
}

// CountZeros returns Bits minus the population count.
func (x Int[T]) CountZeros() uint {
	return bitsOf[T]() - x.CountOnes()
}

// LeadingZeros returns the number of leading zero bits in x viewed as a
// Bits-wide unsigned value. LeadingZeros of 0 is Bits.
func (x Int[T]) LeadingZeros() uint {
	return uint(bits.LeadingZeros64(ubits(x.v))) - (64 - bitsOf[T]())
}

// TrailingZeros returns the number of trailing zero bits in x viewed as a
// Bits-wide unsigned value. TrailingZeros of 0 is Bits.
func (x Int[T]) TrailingZeros() uint {
	u := ubits(x.v)
	if u == 0 {
		return bitsOf[T]()
	}
	return uint(bits.TrailingZeros64(u))
}
