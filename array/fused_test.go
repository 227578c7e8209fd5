// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
)

func TestMulAdd(t *testing.T) {
	got, err := array.MulAdd([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	require.NoError(t, err)
	require.Equal(t, []float64{16, 26}, got)

	got, err = array.MulAddConstant([]float64{1, 2}, []float64{3, 4}, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 10}, got)

	// accumulate in place over a window
	acc := []float64{0, 1, 1, 0}
	_, err = array.MulAddEx(acc, 1, 2, []float64{2, 3}, 0, []float64{10, 10}, 0, acc, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 21, 31, 0}, acc)
}

func TestLerp(t *testing.T) {
	a := []float64{0, 10}
	b := []float64{10, 20}

	mid, err := array.Lerp(a, b, 0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 15}, mid)

	start, err := array.Lerp(a, b, 0)
	require.NoError(t, err)
	require.Equal(t, a, start)

	end, err := array.Lerp(a, b, 1)
	require.NoError(t, err)
	require.Equal(t, b, end)

	// t is not clamped
	over, err := array.Lerp(a, b, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{20, 30}, over)
}

func TestNegate(t *testing.T) {
	require.Equal(t, []float64{-1, 2}, array.Negate([]float64{1, -2}))

	out, err := array.NegateInto(nil, 1, []float64{5, 6, 7}, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{0, -6, -7}, out)
}

func TestMapZip(t *testing.T) {
	sq := array.Map([]float64{1, 2, 3}, func(v float64) float64 { return v * v })
	require.Equal(t, []float64{1, 4, 9}, sq)

	pos := array.Map([]float64{-1, 0, 1}, func(v float64) bool { return v > 0 })
	require.Equal(t, []bool{false, false, true}, pos)

	hyp, err := array.Zip([]float64{3, 5}, []float64{4, 12}, func(a, b float64) float64 { return a*a + b*b })
	require.NoError(t, err)
	require.Equal(t, []float64{25, 169}, hyp)
}
