package overflow

// AddInt64 returns a+b wrapped to 64 bits and whether the exact sum
// overflowed.
func AddInt64(a, b int64) (int64, bool) {
	return kernelAddInt64(a, b)
}

// SubInt64 returns a-b wrapped to 64 bits and whether the exact difference
// overflowed.
func SubInt64(a, b int64) (int64, bool) {
	return kernelSubInt64(a, b)
}

// MulInt64 returns a*b wrapped to 64 bits and whether the exact product
// overflowed.
func MulInt64(a, b int64) (int64, bool) {
	return kernelMulInt64(a, b)
}

// AddUint64 returns a+b wrapped to 64 bits and whether the exact sum
// overflowed.
func AddUint64(a, b uint64) (uint64, bool) {
	return kernelAddUint64(a, b)
}

// SubUint64 returns a-b wrapped to 64 bits and whether the subtraction
// underflowed (b > a).
func SubUint64(a, b uint64) (uint64, bool) {
	return kernelSubUint64(a, b)
}

// MulUint64 returns a*b wrapped to 64 bits and whether the exact product
// overflowed.
func MulUint64(a, b uint64) (uint64, bool) {
	return kernelMulUint64(a, b)
}
