package safenum

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/safenum/internal/panics"
	"github.com/hupe1980/safenum/safeint"
)

// The ten width aliases. Aliases rather than defined types: every safeint
// method and package function applies directly, and the compiler still
// rejects mixing widths because the underlying instantiations differ.
type (
	// I8 is a type-safe signed 8-bit integer.
	I8 = safeint.Int[int8]
	// I16 is a type-safe signed 16-bit integer.
	I16 = safeint.Int[int16]
	// I32 is a type-safe signed 32-bit integer.
	I32 = safeint.Int[int32]
	// I64 is a type-safe signed 64-bit integer.
	I64 = safeint.Int[int64]
	// U8 is a type-safe unsigned 8-bit integer.
	U8 = safeint.Int[uint8]
	// U16 is a type-safe unsigned 16-bit integer.
	U16 = safeint.Int[uint16]
	// U32 is a type-safe unsigned 32-bit integer.
	U32 = safeint.Int[uint32]
	// U64 is a type-safe unsigned 64-bit integer.
	U64 = safeint.Int[uint64]
	// ISize is a type-safe signed pointer-sized integer: 64 bits on 64-bit
	// platforms, 32 bits on 32-bit platforms.
	ISize = safeint.Int[int]
	// USize is the unsigned counterpart of ISize, used for sizes and
	// indexing.
	USize = safeint.Int[uint]
)

// PointerBits is the pointer width of the platform and the width of ISize
// and USize.
const PointerBits = bits.UintSize

// NewI8 wraps an int8.
func NewI8(v int8) I8 { return safeint.New(v) }

// NewI16 wraps an int16.
func NewI16(v int16) I16 { return safeint.New(v) }

// NewI32 wraps an int32.
func NewI32(v int32) I32 { return safeint.New(v) }

// NewI64 wraps an int64.
func NewI64(v int64) I64 { return safeint.New(v) }

// NewU8 wraps a uint8.
func NewU8(v uint8) U8 { return safeint.New(v) }

// NewU16 wraps a uint16.
func NewU16(v uint16) U16 { return safeint.New(v) }

// NewU32 wraps a uint32.
func NewU32(v uint32) U32 { return safeint.New(v) }

// NewU64 wraps a uint64.
func NewU64(v uint64) U64 { return safeint.New(v) }

// NewISize wraps an int.
func NewISize(v int) ISize { return safeint.New(v) }

// NewUSize wraps a uint.
func NewUSize(v uint) USize { return safeint.New(v) }

// lit range-checks a literal value. Literals are under the author's control,
// so an out-of-range literal panics instead of returning None.
func lit[T constraints.Integer](name string, v uint64) safeint.Int[T] {
	x, ok := safeint.From[T](v).Value()
	if !ok {
		panics.Panic(name + " literal out of range")
	}
	return x
}

// MustI8 converts a non-negative literal to I8, panicking above MaxI8.
func MustI8(v uint64) I8 { return lit[int8]("i8", v) }

// MustI16 converts a non-negative literal to I16, panicking above MaxI16.
func MustI16(v uint64) I16 { return lit[int16]("i16", v) }

// MustI32 converts a non-negative literal to I32, panicking above MaxI32.
func MustI32(v uint64) I32 { return lit[int32]("i32", v) }

// MustI64 converts a non-negative literal to I64, panicking above MaxI64.
func MustI64(v uint64) I64 { return lit[int64]("i64", v) }

// MustU8 converts a literal to U8, panicking above MaxU8.
func MustU8(v uint64) U8 { return lit[uint8]("u8", v) }

// MustU16 converts a literal to U16, panicking above MaxU16.
func MustU16(v uint64) U16 { return lit[uint16]("u16", v) }

// MustU32 converts a literal to U32, panicking above MaxU32.
func MustU32(v uint64) U32 { return lit[uint32]("u32", v) }

// MustU64 converts a literal to U64. It never panics; the parameter type is
// the full range.
func MustU64(v uint64) U64 { return lit[uint64]("u64", v) }

// MustISize converts a non-negative literal to ISize, panicking above the
// platform MaxISize.
func MustISize(v uint64) ISize { return lit[int]("isize", v) }

// MustUSize converts a literal to USize, panicking above the platform
// MaxUSize.
func MustUSize(v uint64) USize { return lit[uint]("usize", v) }
