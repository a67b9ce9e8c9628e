package safeint

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/optional"
	"github.com/hupe1980/safenum/overflow"
)

// Checked arithmetic returns None when the exact mathematical result is not
// representable. Widths below 64 bits range-check in the next wider native
// domain; at 64 bits no wider integer exists and the overflow kernels take
// over. The two paths are deliberately separate so the 64-bit semantics never
// depend on wider-type behavior.

// CheckedAdd returns x+y, or None on overflow.
func (x Int[T]) CheckedAdd(y Int[T]) optional.Option[Int[T]] {
	if bitsOf[T]() < 64 {
		if signed[T]() {
			return fromWideSigned[T](int64(x.v) + int64(y.v))
		}
		return fromWideUnsigned[T](uint64(x.v) + uint64(y.v))
	}
	if signed[T]() {
		r, over := overflow.AddInt64(int64(x.v), int64(y.v))
		return fromFull[T](T(r), over)
	}
	r, over := overflow.AddUint64(uint64(x.v), uint64(y.v))
	return fromFull[T](T(r), over)
}

// CheckedSub returns x-y, or None on overflow.
func (x Int[T]) CheckedSub(y Int[T]) optional.Option[Int[T]] {
	if bitsOf[T]() < 64 {
		if signed[T]() {
			return fromWideSigned[T](int64(x.v) - int64(y.v))
		}
		if y.v > x.v {
			return optional.None[Int[T]]()
		}
		return optional.Some(Int[T]{v: x.v - y.v})
	}
	if signed[T]() {
		r, over := overflow.SubInt64(int64(x.v), int64(y.v))
		return fromFull[T](T(r), over)
	}
	r, over := overflow.SubUint64(uint64(x.v), uint64(y.v))
	return fromFull[T](T(r), over)
}

// CheckedMul returns x*y, or None on overflow.
func (x Int[T]) CheckedMul(y Int[T]) optional.Option[Int[T]] {
	if bitsOf[T]() < 64 {
		if signed[T]() {
			return fromWideSigned[T](int64(x.v) * int64(y.v))
		}
		return fromWideUnsigned[T](uint64(x.v) * uint64(y.v))
	}
	if signed[T]() {
		r, over := overflow.MulInt64(int64(x.v), int64(y.v))
		return fromFull[T](T(r), over)
	}
	r, over := overflow.MulUint64(uint64(x.v), uint64(y.v))
	return fromFull[T](T(r), over)
}

// CheckedDiv returns the truncated quotient x/y. None when y is zero, and
// for signed types when x is MIN and y is -1 (the one quotient outside the
// range).
func (x Int[T]) CheckedDiv(y Int[T]) optional.Option[Int[T]] {
	if y.v == 0 {
		return optional.None[Int[T]]()
	}
	if signed[T]() && x.v == minOf[T]() && y.v == ^T(0) {
		return optional.None[Int[T]]()
	}
	return optional.Some(Int[T]{v: x.v / y.v})
}

// CheckedRem returns the remainder of the truncated division x/y, or None
// when y is zero. The result takes x's sign for signed types.
func (x Int[T]) CheckedRem(y Int[T]) optional.Option[Int[T]] {
	if y.v == 0 {
		return optional.None[Int[T]]()
	}
	if signed[T]() && x.v == minOf[T]() && y.v == ^T(0) {
		// The quotient overflows but the exact remainder is 0.
		return optional.Some(Int[T]{v: 0})
	}
	return optional.Some(Int[T]{v: x.v % y.v})
}

// CheckedNeg returns -x, or None when x is MIN. Signed widths only.
func CheckedNeg[T constraints.Signed](x Int[T]) optional.Option[Int[T]] {
	if x.v == minOf[T]() {
		return optional.None[Int[T]]()
	}
	return optional.Some(Int[T]{v: -x.v})
}

// CheckedAbs returns |x|, or None when x is MIN. Signed widths only.
func CheckedAbs[T constraints.Signed](x Int[T]) optional.Option[Int[T]] {
	if x.v == minOf[T]() {
		return optional.None[Int[T]]()
	}
	if x.v < 0 {
		return optional.Some(Int[T]{v: -x.v})
	}
	return optional.Some(Int[T]{v: x.v})
}

// fromWideSigned range-checks a value computed in the wider signed domain.
func fromWideSigned[T constraints.Integer](r int64) optional.Option[Int[T]] {
	if r < int64(minOf[T]()) || r > int64(maxOf[T]()) {
		return optional.None[Int[T]]()
	}
	return optional.Some(Int[T]{v: T(r)})
}

// fromWideUnsigned range-checks a value computed in the wider unsigned
// domain.
func fromWideUnsigned[T constraints.Integer](r uint64) optional.Option[Int[T]] {
	if r > uint64(maxOf[T]()) {
		return optional.None[Int[T]]()
	}
	return optional.Some(Int[T]{v: T(r)})
}

// fromFull wraps a kernel result at the full 64-bit width.
func fromFull[T constraints.Integer](r T, over bool) optional.Option[Int[T]] {
	if over {
		return optional.None[Int[T]]()
	}
	return optional.Some(Int[T]{v: r})
}
