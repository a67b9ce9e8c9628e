package safeint

// Saturating arithmetic clamps to MIN or MAX instead of failing. The clamp
// side follows the direction of the overflow: for add and sub the sign of
// the receiving operand decides, for mul the agreement of the operand signs.

// SaturatingAdd returns x+y clamped to [MIN, MAX].
func (x Int[T]) SaturatingAdd(y Int[T]) Int[T] {
	if r, ok := x.CheckedAdd(y).Value(); ok {
		return r
	}
	if signed[T]() && x.v < 0 {
		return Int[T]{v: minOf[T]()}
	}
	return Int[T]{v: maxOf[T]()}
}

// SaturatingSub returns x-y clamped to [MIN, MAX]. For unsigned widths an
// underflow clamps to MIN, which is 0.
func (x Int[T]) SaturatingSub(y Int[T]) Int[T] {
	if r, ok := x.CheckedSub(y).Value(); ok {
		return r
	}
	if signed[T]() && x.v >= 0 {
		return Int[T]{v: maxOf[T]()}
	}
	return Int[T]{v: minOf[T]()}
}

// SaturatingMul returns x*y clamped to [MIN, MAX]. Signed overflow clamps to
// MAX when the operand signs agree and to MIN when they differ; unsigned
// overflow always clamps to MAX.
func (x Int[T]) SaturatingMul(y Int[T]) Int[T] {
	if r, ok := x.CheckedMul(y).Value(); ok {
		return r
	}
	if signed[T]() && (x.v < 0) != (y.v < 0) {
		return Int[T]{v: minOf[T]()}
	}
	return Int[T]{v: maxOf[T]()}
}
