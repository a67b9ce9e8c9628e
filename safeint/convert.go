package safeint

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/internal/panics"
	"github.com/hupe1980/safenum/optional"
)

// Conversions between widths are free functions: Go methods cannot introduce
// the target type parameter. To and As convert to a primitive type, Widen,
// Narrow and Cast to another Int.

// To converts to the primitive type D, returning None when the value does
// not fit D's range. A negative value never fits an unsigned D.
func To[D, S constraints.Integer](x Int[S]) optional.Option[D] {
	if !fits[D](x.v) {
		return optional.None[D]()
	}
	return optional.Some(D(x.v))
}

// As reinterprets the value as the primitive type D with modular semantics,
// like a plain Go conversion.
func As[D, S constraints.Integer](x Int[S]) D {
	return D(x.v)
}

// Widen converts losslessly to a wider Int. The target must not lose range:
// it needs at least the source's width, a signed source requires a signed
// target, and an unsigned source requires a strictly wider signed target.
// A request that could lose range is a programmer error and panics; use
// Narrow for a checked conversion.
func Widen[D, S constraints.Integer](x Int[S]) Int[D] {
	if !widens[D, S]() {
		panics.Panic(fmt.Sprintf("widen: %d-bit target cannot hold every %d-bit source value", bitsOf[D](), bitsOf[S]()))
	}
	return Int[D]{v: D(x.v)}
}

// Narrow converts to another Int, returning None when the value does not fit
// the target's range.
func Narrow[D, S constraints.Integer](x Int[S]) optional.Option[Int[D]] {
	if !fits[D](x.v) {
		return optional.None[Int[D]]()
	}
	return optional.Some(Int[D]{v: D(x.v)})
}

// Cast reinterprets the value as another Int with modular semantics. It
// always succeeds.
func Cast[D, S constraints.Integer](x Int[S]) Int[D] {
	return Int[D]{v: D(x.v)}
}

// widens reports whether every S value is representable in D.
func widens[D, S constraints.Integer]() bool {
	switch {
	case signed[S]() == signed[D]():
		return bitsOf[D]() >= bitsOf[S]()
	case signed[S]():
		// Signed source cannot widen into an unsigned target.
		return false
	default:
		// Unsigned source needs a strictly wider signed target.
		return bitsOf[D]() > bitsOf[S]()
	}
}
