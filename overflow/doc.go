// Package overflow provides overflow-detecting add, sub and mul for 64-bit
// integers, the width at which no wider native integer exists.
//
// Every function returns the bit-exact two's-complement wrapping result
// together with an overflow flag that is true iff the mathematically precise
// result does not fit in 64 bits.
//
// # Kernels
//
// Two interchangeable kernel sets implement the six operations:
//
//   - bits (default): math/bits intrinsics, using the Add64 carry and Sub64
//     borrow for unsigned add/sub, the Mul64 high word for unsigned mul, a
//     sign-adjusted Mul64 high word for signed mul, and XOR sign identities
//     for signed add/sub.
//   - portable: pure arithmetic identities with no intrinsic support,
//     including the explicit MIN/-1 special cases for signed mul.
//
// Both sets yield identical results; they differ only in cost. Selection
// happens once at init. Set SAFENUM_OVERFLOW=portable (or =bits) to override,
// e.g. to cross-check the kernels on a new platform. ActiveKernel reports the
// selected set and IsOverridden whether the environment forced it.
package overflow
