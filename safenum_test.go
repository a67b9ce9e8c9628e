package safenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/safenum"
	"github.com/hupe1980/safenum/internal/panics"
	"github.com/hupe1980/safenum/safeint"
)

func TestSignedOverflowScenarios(t *testing.T) {
	hundred := safenum.MustI8(100)

	// 100 + 100 exceeds MaxI8 under every policy except wrapping.
	assert.True(t, hundred.CheckedAdd(hundred).IsNone())
	assert.Equal(t, safenum.NewI8(127), hundred.SaturatingAdd(hundred))
	assert.Equal(t, safenum.NewI8(-56), hundred.WrappingAdd(hundred))

	wrapped, overflowed := hundred.OverflowingAdd(hundred)
	assert.Equal(t, safenum.NewI8(-56), wrapped)
	assert.True(t, overflowed)

	// 100 + 27 is the exact boundary.
	sum := hundred.CheckedAdd(safenum.NewI8(27)).Expect("fits")
	assert.Equal(t, safenum.NewI8(127), sum)
}

func TestMinNegationScenarios(t *testing.T) {
	min := safeint.MinOf[int8]()

	assert.True(t, safeint.CheckedNeg(min).IsNone())
	assert.True(t, safeint.CheckedAbs(min).IsNone())
	assert.Equal(t, min, min.WrappingNeg())

	// MIN / -1 is the one division overflow.
	minusOne := safenum.NewI8(-1)
	assert.True(t, min.CheckedDiv(minusOne).IsNone())
	assert.Equal(t, safenum.NewI8(0), min.CheckedRem(minusOne).Expect("rem defined"))
}

func TestUnsignedScenarios(t *testing.T) {
	zero := safenum.NewU8(0)
	one := safenum.MustU8(1)

	// 0 - 1 underflows: checked fails, saturating floors, wrapping goes to MAX.
	assert.True(t, zero.CheckedSub(one).IsNone())
	assert.Equal(t, zero, zero.SaturatingSub(one))
	assert.Equal(t, safenum.NewU8(255), zero.WrappingSub(one))

	big := safenum.MustU8(200)
	assert.True(t, big.CheckedAdd(big).IsNone())
	assert.Equal(t, safenum.NewU8(255), big.SaturatingAdd(big))
	assert.Equal(t, safenum.NewU8(144), big.WrappingAdd(big))
}

func Test64BitScenarios(t *testing.T) {
	maxI64 := safeint.MaxOf[int64]()
	maxU64 := safeint.MaxOf[uint64]()
	one64 := safenum.MustI64(1)

	assert.True(t, maxI64.CheckedAdd(one64).IsNone())
	assert.Equal(t, safeint.MinOf[int64](), maxI64.WrappingAdd(one64))
	assert.Equal(t, maxI64, maxI64.SaturatingMul(safenum.MustI64(2)))

	assert.True(t, maxU64.CheckedMul(safenum.MustU64(2)).IsNone())
	assert.Equal(t, safenum.NewU64(^uint64(0)-1), maxU64.WrappingMul(safenum.MustU64(2)))
}

func TestPointerSizedAliases(t *testing.T) {
	require.Contains(t, []int{32, 64}, safenum.PointerBits)
	assert.Equal(t, uint(safenum.PointerBits), safeint.BitsOf[int]())
	assert.Equal(t, uint(safenum.PointerBits), safeint.BitsOf[uint]())

	// An ISize interoperates with the fixed width it matches on this
	// platform only through explicit conversion.
	n := safenum.NewISize(42)
	assert.Equal(t, int64(42), safeint.To[int64](n).Expect("isize fits i64"))
}

func TestMustLiterals(t *testing.T) {
	assert.Equal(t, int8(127), safenum.MustI8(127).Get())
	assert.Equal(t, uint16(65535), safenum.MustU16(65535).Get())
	assert.Equal(t, uint64(^uint64(0)), safenum.MustU64(^uint64(0)).Get())

	for name, f := range map[string]func(){
		"i8 above max":  func() { safenum.MustI8(128) },
		"u8 above max":  func() { safenum.MustU8(256) },
		"i32 above max": func() { safenum.MustI32(1 << 31) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				msg, ok := r.(panics.Message)
				require.True(t, ok)
				assert.Contains(t, msg.Error(), "literal out of range")
			}()
			f()
		})
	}
}

func TestAliasesAreDistinctTypes(t *testing.T) {
	// Same numeric value, different widths: distinct map key spaces.
	m := map[any]string{
		safenum.NewI8(1): "i8",
		safenum.NewU8(1): "u8",
		safenum.NewI32(1): "i32",
	}
	assert.Len(t, m, 3)
	assert.Equal(t, "i8", m[safenum.NewI8(1)])
}
