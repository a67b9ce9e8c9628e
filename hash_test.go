package safenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/safenum"
	"github.com/hupe1980/safenum/safeint"
)

func TestSum64Deterministic(t *testing.T) {
	x := safenum.NewI32(12345)
	assert.Equal(t, safenum.Sum64(x), safenum.Sum64(x))
	assert.Equal(t, safenum.Sum64(x), safenum.Sum64(safenum.NewI32(12345)))
	assert.NotEqual(t, safenum.Sum64(x), safenum.Sum64(safenum.NewI32(12346)))
}

func TestSum64SignExtension(t *testing.T) {
	// Equal values of equal width hash equally regardless of route.
	assert.Equal(t, safenum.Sum64(safenum.NewI8(-1)), safenum.Sum64(safenum.NewI8(-1)))

	// Sign extension separates -1 from the same-width bit pattern 255.
	assert.NotEqual(t,
		safenum.Sum64(safenum.NewI8(-1)),
		safenum.Sum64(safenum.NewU8(255)))

	// A non-negative value hashes the same at every signed width.
	assert.Equal(t,
		safenum.Sum64(safenum.NewI8(100)),
		safenum.Sum64(safenum.NewI64(100)))
}

func TestSum64PointerSized(t *testing.T) {
	// ISize and USize hash through the same 64-bit encoding as the fixed
	// widths, so they agree with their platform equivalents.
	assert.Equal(t,
		safenum.Sum64(safenum.NewISize(-42)),
		safenum.Sum64(safenum.NewI64(-42)))
	assert.Equal(t,
		safenum.Sum64(safenum.NewUSize(42)),
		safenum.Sum64(safenum.NewU64(42)))
}

func TestSum64Distribution(t *testing.T) {
	// Not a statistical test, just a collision sanity check over a small
	// dense range.
	seen := make(map[uint64]struct{}, 512)
	for i := -256; i < 256; i++ {
		seen[safenum.Sum64(safeint.New(int32(i)))] = struct{}{}
	}
	assert.Len(t, seen, 512)
}
