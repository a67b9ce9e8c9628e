package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeNone(t *testing.T) {
	t.Run("some", func(t *testing.T) {
		o := Some(42)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNone())

		v, ok := o.Value()
		assert.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("none", func(t *testing.T) {
		o := None[int]()
		assert.False(t, o.IsSome())
		assert.True(t, o.IsNone())

		_, ok := o.Value()
		assert.False(t, ok)
	})

	t.Run("zero value is none", func(t *testing.T) {
		var o Option[string]
		assert.True(t, o.IsNone())
	})
}

func TestUnwrap(t *testing.T) {
	t.Run("some returns value", func(t *testing.T) {
		assert.Equal(t, "x", Some("x").Unwrap())
	})

	t.Run("none panics", func(t *testing.T) {
		require.Panics(t, func() {
			None[string]().Unwrap()
		})
	})
}

func TestExpect(t *testing.T) {
	t.Run("some returns value", func(t *testing.T) {
		assert.Equal(t, 7, Some(7).Expect("want seven"))
	})

	t.Run("none panics with message", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			err, ok := r.(error)
			require.True(t, ok)
			assert.Equal(t, "want seven", err.Error())
		}()
		None[int]().Expect("want seven")
	})
}

func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 1, Some(1).UnwrapOr(9))
	assert.Equal(t, 9, None[int]().UnwrapOr(9))
}

func TestUnwrapOrElse(t *testing.T) {
	calls := 0
	fallback := func() int {
		calls++
		return 9
	}

	assert.Equal(t, 1, Some(1).UnwrapOrElse(fallback))
	assert.Equal(t, 0, calls, "fallback must not run for Some")

	assert.Equal(t, 9, None[int]().UnwrapOrElse(fallback))
	assert.Equal(t, 1, calls)
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	assert.Equal(t, Some(4), Map(Some(2), double))
	assert.Equal(t, None[int](), Map(None[int](), double))

	// Type-changing map.
	toLen := func(s string) int { return len(s) }
	assert.Equal(t, Some(3), Map(Some("abc"), toLen))
	assert.Equal(t, None[int](), Map(None[string](), toLen))
}

func TestAndThenOrElse(t *testing.T) {
	assert.Equal(t, Some("y"), AndThen(Some(1), Some("y")))
	assert.Equal(t, None[string](), AndThen(None[int](), Some("y")))
	assert.Equal(t, None[string](), AndThen(Some(1), None[string]()))

	assert.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrElse(Some(2)))
	assert.Equal(t, None[int](), None[int]().OrElse(None[int]()))
}

func TestEquality(t *testing.T) {
	// Plain == observes the equality laws for comparable payloads.
	assert.True(t, Some(3) == Some(3))
	assert.False(t, Some(3) == Some(4))
	assert.True(t, None[int]() == None[int]())
	assert.False(t, Some(0) == None[int]())

	assert.True(t, Equal(Some(3), Some(3)))
	assert.False(t, Equal(Some(3), None[int]()))
	assert.True(t, Equal(None[int](), None[int]()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())
}
