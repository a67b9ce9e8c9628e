// Package result implements Result[T, E], a sum type that holds either a
// success value (Ok) or an error payload (Err).
//
// Result is the carrier for failures that deserve inspection. The numeric
// core itself only ever fails informationlessly and returns
// optional.Option; Result exists for the richer layers built on top of it,
// where "what went wrong" matters.
//
// # Combinators
//
// Short-circuiting composition mirrors the Option surface:
//
//	parsed := parse(input)                             // Result[int, ParseError]
//	scaled := result.Map(parsed, func(v int) int64 {   // error type preserved
//		return int64(v) * 100
//	})
//	final := result.AndThen(scaled, validate)          // chain another fallible step
//
// Type-changing combinators (Map, MapErr, AndThen, OrElse, And, Or) are
// package functions because Go methods cannot introduce type parameters.
//
// # Valueless success
//
// Operations that succeed with nothing to report use Result[Void, E]; see
// OkVoid.
package result
