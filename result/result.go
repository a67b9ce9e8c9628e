package result

import (
	"fmt"

	"github.com/hupe1980/safenum/internal/panics"
	"github.com/hupe1980/safenum/optional"
)

// Result holds either a success value T (Ok) or an error payload E (Err).
//
// The inactive arm is always the zero value, so for comparable T and E the
// struct itself is comparable and == compares tag and payload jointly.
//
// The zero value is Ok holding T's zero value; prefer the Ok and Err
// factories.
type Result[T, E any] struct {
	value T
	err   E
	isErr bool
}

// Ok returns a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err returns a Result holding the error payload e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isErr: true}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool { return !r.isErr }

// IsErr reports whether the Result holds an error payload.
func (r Result[T, E]) IsErr() bool { return r.isErr }

// Expect returns the success value or panics with msg on Err.
func (r Result[T, E]) Expect(msg string) T {
	if r.isErr {
		panics.Panic(msg)
	}
	return r.value
}

// Unwrap returns the success value or panics on Err.
func (r Result[T, E]) Unwrap() T {
	return r.Expect("called Unwrap() on an Err value")
}

// ExpectErr returns the error payload or panics with msg on Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if !r.isErr {
		panics.Panic(msg)
	}
	return r.err
}

// UnwrapErr returns the error payload or panics on Ok.
func (r Result[T, E]) UnwrapErr() E {
	return r.ExpectErr("called UnwrapErr() on an Ok value")
}

// UnwrapOr returns the success value, or def on Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isErr {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value, or computes one from the error
// payload on Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.isErr {
		return f(r.err)
	}
	return r.value
}

// Ok converts to an Option over the success value, discarding the error.
func (r Result[T, E]) Ok() optional.Option[T] {
	if r.isErr {
		return optional.None[T]()
	}
	return optional.Some(r.value)
}

// Err converts to an Option over the error payload, discarding the value.
func (r Result[T, E]) Err() optional.Option[E] {
	if r.isErr {
		return optional.Some(r.err)
	}
	return optional.None[E]()
}

// AndThen chains a fallible step that keeps both types: on Ok it returns
// f(value), on Err it short-circuits with the original error. Chains that
// change the value type use the free AndThen.
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if r.isErr {
		return r
	}
	return f(r.value)
}

// OrElse chains a recovery step that keeps both types: on Err it returns
// f(error), on Ok it short-circuits with the original value. Chains that
// change the error type use the free OrElse.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.isErr {
		return f(r.err)
	}
	return r
}

// String renders "Ok(v)" or "Err(e)".
func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the success value, leaving Err unchanged. The error type
// is preserved.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr applies f to the error payload, leaving Ok unchanged. The value
// type is preserved.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isErr {
		return Err[T, F](f(r.err))
	}
	return Ok[T, F](r.value)
}

// AndThen chains a fallible step: on Ok it returns f(value), on Err it
// short-circuits with the original error.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return f(r.value)
}

// OrElse chains a recovery step: on Err it returns f(error), on Ok it
// short-circuits with the original value.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.isErr {
		return f(r.err)
	}
	return Ok[T, F](r.value)
}

// And returns res if r is Ok, otherwise the original Err.
func And[T, U, E any](r Result[T, E], res Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return res
}

// Or returns res if r is Err, otherwise the original Ok.
func Or[T, E, F any](r Result[T, E], res Result[T, F]) Result[T, F] {
	if r.isErr {
		return res
	}
	return Ok[T, F](r.value)
}
