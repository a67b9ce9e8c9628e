package safeint

// Wrapping arithmetic is modular at the nominal width. Go defines integer
// overflow as two's-complement wraparound for signed and unsigned types
// alike, so the underlying operators already carry the contract.

// WrappingAdd returns x+y modulo 2^Bits.
func (x Int[T]) WrappingAdd(y Int[T]) Int[T] {
	return Int[T]{v: x.v + y.v}
}

// WrappingSub returns x-y modulo 2^Bits.
func (x Int[T]) WrappingSub(y Int[T]) Int[T] {
	return Int[T]{v: x.v - y.v}
}

// WrappingMul returns x*y modulo 2^Bits.
func (x Int[T]) WrappingMul(y Int[T]) Int[T] {
	return Int[T]{v: x.v * y.v}
}

// WrappingNeg returns the two's-complement negation; MIN maps to MIN.
func (x Int[T]) WrappingNeg() Int[T] {
	return Int[T]{v: -x.v}
}
