package safeint

import (
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/optional"
)

// Int is a type-safe integer over the underlying type T. It carries no state
// beyond the value itself: copies are independent, the zero value is 0, and
// two Ints of the same width compare with ==.
//
// Distinct instantiations are distinct Go types, so values of different
// widths never mix without an explicit Widen, Narrow or Cast.
type Int[T constraints.Integer] struct {
	v T
}

// New wraps a value of the exact underlying type. Construction from any
// other integer type does not compile; use From for a range-checked
// conversion.
func New[T constraints.Integer](v T) Int[T] {
	return Int[T]{v: v}
}

// Get returns the underlying value.
func (x Int[T]) Get() T {
	return x.v
}

// From converts any integer to Int[T], returning None when v is outside
// [MinOf, MaxOf].
func From[T, V constraints.Integer](v V) optional.Option[Int[T]] {
	if !fits[T](v) {
		return optional.None[Int[T]]()
	}
	return optional.Some(Int[T]{v: T(v)})
}

// SaturatingFrom converts any integer to Int[T], clamping to MinOf or MaxOf
// when v is out of range.
func SaturatingFrom[T, V constraints.Integer](v V) Int[T] {
	if fits[T](v) {
		return Int[T]{v: T(v)}
	}
	if v < 0 {
		return Int[T]{v: minOf[T]()}
	}
	return Int[T]{v: maxOf[T]()}
}

// MinOf returns the smallest representable Int[T].
func MinOf[T constraints.Integer]() Int[T] {
	return Int[T]{v: minOf[T]()}
}

// MaxOf returns the largest representable Int[T].
func MaxOf[T constraints.Integer]() Int[T] {
	return Int[T]{v: maxOf[T]()}
}

// BitsOf returns the width of T in bits.
func BitsOf[T constraints.Integer]() uint {
	return bitsOf[T]()
}

// Min returns the smallest representable value of x's width, so limits are
// reachable from a value without naming its type parameter.
func (x Int[T]) Min() Int[T] {
	return MinOf[T]()
}

// Max returns the largest representable value of x's width.
func (x Int[T]) Max() Int[T] {
	return MaxOf[T]()
}

// Bits returns the width of x in bits.
func (x Int[T]) Bits() uint {
	return bitsOf[T]()
}

// signed reports whether T is a signed type. Resolved per instantiation;
// the compiler folds it to a constant.
func signed[T constraints.Integer]() bool {
	var z T
	return ^z < z
}

func bitsOf[T constraints.Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

func minOf[T constraints.Integer]() T {
	if !signed[T]() {
		return 0
	}
	// 1 << (bits-1) wraps to the sign-bit pattern.
	return T(1) << (bitsOf[T]() - 1)
}

func maxOf[T constraints.Integer]() T {
	var z T
	if signed[T]() {
		return ^minOf[T]()
	}
	return ^z
}

// umask returns the all-ones pattern of T's width as a uint64.
func umask[T constraints.Integer]() uint64 {
	return ^uint64(0) >> (64 - bitsOf[T]())
}

// ubits returns v's bit pattern as a Bits-wide unsigned value. Conversion of
// a negative v sign-extends; the mask trims back to the nominal width.
func ubits[T constraints.Integer](v T) uint64 {
	return uint64(v) & umask[T]()
}

// fits reports whether v is representable in D. The four signedness cases
// are checked in a domain wide enough to hold both ranges; a signed negative
// never fits an unsigned target.
func fits[D, S constraints.Integer](v S) bool {
	switch {
	case signed[S]() && signed[D]():
		return int64(v) >= int64(minOf[D]()) && int64(v) <= int64(maxOf[D]())
	case !signed[S]() && !signed[D]():
		return uint64(v) <= uint64(maxOf[D]())
	case signed[S]():
		// S signed, D unsigned.
		return v >= 0 && uint64(v) <= uint64(maxOf[D]())
	default:
		// S unsigned, D signed.
		return uint64(v) <= uint64(maxOf[D]())
	}
}
