// Package safenum provides type-safe numeric primitives with explicit
// overflow discipline.
//
// Safenum ports a systems-language tradition to Go: integers that never
// convert implicitly, arithmetic that never loses information silently, and
// two sum types - optional.Option and result.Result - that carry the outcome
// of fallible operations.
//
// # Quick Start
//
//	a := safenum.NewI8(100)
//	b := safenum.NewI8(50)
//
//	a.CheckedAdd(b)            // None: 150 exceeds the i8 range
//	a.SaturatingAdd(b)         // 127
//	a.WrappingAdd(b)           // -106
//	a.OverflowingAdd(b)        // (-106, true)
//
// # Widths
//
// Ten named widths cover the fixed sizes plus the pointer size:
//
//	I8  I16  I32  I64  ISize
//	U8  U16  U32  U64  USize
//
// Each is an alias of safeint.Int over the matching Go type, so values are
// plain comparable structs: they work as map keys, copy freely, and values
// of different widths never mix without an explicit conversion:
//
//	v := safenum.NewI8(50)
//	w := safeint.Widen[int64](v)    // I64, lossless
//	n := safeint.Narrow[int8](w)    // Some(I8), range-checked
//	c := safeint.Cast[uint8](v)     // U8, modular
//
// # Failure channels
//
// Checked operations return optional.Option and say only "the exact result
// does not exist". Richer layers that need error payloads build on
// result.Result. Unwrap and Expect on the wrong variant panic, as do the
// Must* constructors on out-of-range input - both report caller errors, not
// data errors.
//
//	safenum.MustU8(200)        // U8 value 200
//	safenum.MustU8(300)        // panics: literal out of range
//
// # Overflow detection
//
// Below 64 bits overflow is detected in the next wider native domain. At 64
// bits the overflow package takes over with kernels selected at init; see
// its documentation and the SAFENUM_OVERFLOW override.
package safenum
