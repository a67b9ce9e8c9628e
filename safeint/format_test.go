package safeint_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/safenum/safeint"
)

func TestString(t *testing.T) {
	// 8-bit values render as numbers, never as characters.
	assert.Equal(t, "65", safeint.New(int8(65)).String())
	assert.Equal(t, "200", safeint.New(uint8(200)).String())

	assert.Equal(t, "-128", safeint.MinOf[int8]().String())
	assert.Equal(t, "-9223372036854775808", safeint.MinOf[int64]().String())
	assert.Equal(t, "18446744073709551615", safeint.MaxOf[uint64]().String())
	assert.Equal(t, "0", safeint.New(uint(0)).String())
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []string{"-128", "-1", "0", "42", "127"} {
		var x safeint.Int[int8]
		require.NoError(t, x.UnmarshalText([]byte(s)))

		out, err := x.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(out))
	}
}

func TestUnmarshalTextRange(t *testing.T) {
	var i8 safeint.Int[int8]
	assert.Error(t, i8.UnmarshalText([]byte("128")))
	assert.Error(t, i8.UnmarshalText([]byte("-129")))

	var u16 safeint.Int[uint16]
	assert.Error(t, u16.UnmarshalText([]byte("65536")))
	assert.Error(t, u16.UnmarshalText([]byte("-1")))
	assert.Error(t, u16.UnmarshalText([]byte("12abc")))
	assert.NoError(t, u16.UnmarshalText([]byte("65535")))
	assert.Equal(t, uint16(65535), u16.Get())
}

func TestJSON(t *testing.T) {
	type doc struct {
		Count safeint.Int[uint32] `json:"count"`
		Delta safeint.Int[int16]  `json:"delta"`
	}

	in := doc{Count: safeint.New(uint32(4000000000)), Delta: safeint.New(int16(-300))}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":4000000000,"delta":-300}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	// Out-of-range numbers are rejected, not wrapped.
	var narrow struct {
		V safeint.Int[int8] `json:"v"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"v":1000}`), &narrow))
}
