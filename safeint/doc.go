// Package safeint implements Int[T], a generic type-safe integer with
// explicit overflow discipline.
//
// Every arithmetic operation that could lose information makes the caller
// pick a policy:
//
//   - Checked*: returns optional.None when the exact result is not
//     representable.
//   - Saturating*: clamps to MIN or MAX.
//   - Wrapping*: modular arithmetic at the nominal width.
//   - Overflowing*: the wrapping result paired with an overflow flag.
//
// # Widths
//
// Int instantiates over every fixed-width Go integer plus the pointer-sized
// int and uint. The top-level safenum package names the instantiations
// (safenum.I8 .. safenum.U64, safenum.ISize, safenum.USize); this package
// holds the machinery.
//
// Widths below 64 bits detect overflow by computing in the next wider native
// domain. At 64 bits no wider integer exists; detection delegates to the
// overflow package and its kernel dispatch.
//
// # Conversions
//
// Construction from the exact underlying type is New; anything else goes
// through From (checked) or SaturatingFrom (clamped). Between widths, Widen
// is lossless and panics on a request that could lose range, Narrow is
// range-checked and returns an Option, Cast is modular and never fails.
// There are no implicit conversions: distinct instantiations are distinct
// types and do not mix in expressions or comparisons.
//
// Operations limited to signed widths (CheckedNeg, CheckedAbs, IsNegative,
// Signum) and operations that change width are package functions constrained
// accordingly; instantiating them with the wrong signedness does not
// compile.
package safeint
