package overflow

import "math"

// The portable kernels use only arithmetic identities. They exist to
// cross-check the bits kernels and to serve platforms where math/bits is not
// lowered to intrinsics; SAFENUM_OVERFLOW=portable selects them.

func addUint64Portable(a, b uint64) (uint64, bool) {
	r := a + b
	return r, r < a
}

func subUint64Portable(a, b uint64) (uint64, bool) {
	return a - b, b > a
}

func mulUint64Portable(a, b uint64) (uint64, bool) {
	r := a * b
	return r, a != 0 && r/a != b
}

func addInt64Portable(a, b int64) (int64, bool) {
	r := a + b
	return r, ((a^r)&(b^r)) < 0
}

func subInt64Portable(a, b int64) (int64, bool) {
	r := a - b
	return r, ((a^b)&(a^r)) < 0
}

func mulInt64Portable(a, b int64) (int64, bool) {
	r := a * b
	if a == 0 {
		return r, false
	}
	// MIN * -1 wraps to MIN and would divide to MIN again, so the quotient
	// check below cannot see it. Handle both orderings explicitly.
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return r, true
	}
	return r, r/a != b
}
