package overflow

import "math/bits"

// The bits kernels lean on math/bits, which the compiler lowers to add-carry,
// sub-borrow and multiply-high instructions on amd64 and arm64.

func addUint64Bits(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry != 0
}

func subUint64Bits(a, b uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(a, b, 0)
	return diff, borrow != 0
}

func mulUint64Bits(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

func addInt64Bits(a, b int64) (int64, bool) {
	// No signed add-carry exists; the sign identity is what the hardware
	// path computes anyway. Overflow iff both operands differ in sign from
	// the wrapped result.
	r := a + b
	return r, ((a^r)&(b^r)) < 0
}

func subInt64Bits(a, b int64) (int64, bool) {
	// Overflow iff the operands differ in sign and the result took b's sign.
	r := a - b
	return r, ((a^b)&(a^r)) < 0
}

func mulInt64Bits(a, b int64) (int64, bool) {
	// Unsigned 128-bit product, then adjust the high word for the signs:
	// for a < 0 the true product is short by b<<64, likewise for b < 0.
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	hi -= uint64(a>>63) & uint64(b)
	hi -= uint64(b>>63) & uint64(a)
	r := int64(lo)
	// Exact iff the high word is pure sign extension of the low word.
	return r, int64(hi) != r>>63
}
