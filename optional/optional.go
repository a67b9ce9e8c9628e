// Package optional implements Option[T], a sum type that either holds a
// value (Some) or holds nothing (None).
//
// Option is the failure carrier for operations whose only possible failure
// is "the result does not exist": checked arithmetic, narrowing conversions,
// range-checked construction. Failures that deserve a payload use
// result.Result instead.
//
// Option values are plain comparable structs. A None never holds a stale
// payload; every combinator returns a freshly zeroed None, so == observes the
// equality laws directly: two Nones are equal, Some(a) == Some(b) iff a == b,
// and Some never equals None.
package optional

import (
	"fmt"

	"github.com/hupe1980/safenum/internal/panics"
)

// Option holds either a T (Some) or nothing (None).
//
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Value returns the contained value and whether it is present.
// This is the comma-ok accessor for callers that prefer plain Go flow.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

// Expect returns the contained value or panics with msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panics.Panic(msg)
	}
	return o.value
}

// Unwrap returns the contained value or panics on None.
func (o Option[T]) Unwrap() T {
	return o.Expect("called Unwrap() on a None value")
}

// UnwrapOr returns the contained value, or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or the result of f on None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.some {
		return o.value
	}
	return f()
}

// OrElse returns o if it holds a value, otherwise other.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// String renders "Some(v)" or "None".
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the contained value; None stays None.
//
// Map is a free function because Go methods cannot introduce the result type
// parameter U.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// AndThen returns other if o holds a value, otherwise None.
func AndThen[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// Equal reports whether two Options are equal: both None, or both Some with
// equal payloads. For comparable T this agrees with ==.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
