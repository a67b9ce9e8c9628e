package safeint

import "golang.org/x/exp/constraints"

// Comparisons follow the underlying integer order. Equality is plain ==;
// comparisons across widths do not compile.

// Cmp returns -1 if x < y, 0 if x == y, +1 if x > y.
func (x Int[T]) Cmp(y Int[T]) int {
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	default:
		return 0
	}
}

// Less reports x < y.
func (x Int[T]) Less(y Int[T]) bool { return x.v < y.v }

// LessEq reports x <= y.
func (x Int[T]) LessEq(y Int[T]) bool { return x.v <= y.v }

// Greater reports x > y.
func (x Int[T]) Greater(y Int[T]) bool { return x.v > y.v }

// GreaterEq reports x >= y.
func (x Int[T]) GreaterEq(y Int[T]) bool { return x.v >= y.v }

// IsPositive reports x > 0.
func (x Int[T]) IsPositive() bool { return x.v > 0 }

// IsZero reports x == 0.
func (x Int[T]) IsZero() bool { return x.v == 0 }

// IsNegative reports x < 0. Signed widths only.
func IsNegative[T constraints.Signed](x Int[T]) bool {
	return x.v < 0
}

// Signum returns -1, 0 or +1 according to x's sign. Signed widths only.
func Signum[T constraints.Signed](x Int[T]) int {
	switch {
	case x.v > 0:
		return 1
	case x.v < 0:
		return -1
	default:
		return 0
	}
}
