package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupWidth(t *testing.T) {
	w, err := lookupWidth("i8")
	require.NoError(t, err)
	assert.Equal(t, uint(8), w.bits)
	assert.True(t, w.signed)
	assert.Equal(t, "-128", w.min)
	assert.Equal(t, "127", w.max)

	w, err = lookupWidth("u64")
	require.NoError(t, err)
	assert.False(t, w.signed)
	assert.Equal(t, "18446744073709551615", w.max)

	_, err = lookupWidth("i128")
	assert.Error(t, err)
}

func TestEvalWidth(t *testing.T) {
	w, err := lookupWidth("i8")
	require.NoError(t, err)

	lines, err := w.eval("add", "100", "100")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"checked:     none (overflow)",
		"saturating:  127",
		"wrapping:    -56",
		"overflowing: -56 overflowed=true",
	}, lines)

	lines, err = w.eval("div", "-128", "-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"checked:     none (undefined)"}, lines)

	lines, err = w.eval("rem", "7", "3")
	require.NoError(t, err)
	assert.Equal(t, []string{"checked:     1"}, lines)

	_, err = w.eval("add", "200", "1")
	assert.Error(t, err, "operand above MaxI8 must be rejected")

	_, err = w.eval("pow", "2", "10")
	assert.Error(t, err)
}

func TestSelftestWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, w := range widths {
		require.NoError(t, w.selftest(rng, 500), w.name)
	}
}

func TestKernelOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	require.NoError(t, kernelOracle(rng, 500))
}
