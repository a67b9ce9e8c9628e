package safeint

// Overflowing arithmetic returns the wrapping result together with the
// overflow flag. The pair agrees with the wrapping and checked policies by
// construction: the first component is always the modular result, the second
// is true exactly when the checked form would return None.

// OverflowingAdd returns (x+y modulo 2^Bits, overflowed).
func (x Int[T]) OverflowingAdd(y Int[T]) (Int[T], bool) {
	return x.WrappingAdd(y), x.CheckedAdd(y).IsNone()
}

// OverflowingSub returns (x-y modulo 2^Bits, overflowed).
func (x Int[T]) OverflowingSub(y Int[T]) (Int[T], bool) {
	return x.WrappingSub(y), x.CheckedSub(y).IsNone()
}

// OverflowingMul returns (x*y modulo 2^Bits, overflowed).
func (x Int[T]) OverflowingMul(y Int[T]) (Int[T], bool) {
	return x.WrappingMul(y), x.CheckedMul(y).IsNone()
}
