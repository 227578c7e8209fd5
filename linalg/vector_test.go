// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

func TestDotLength(t *testing.T) {
	d, err := linalg.Dot3([]float64{1, 2, 3}, 0, []float64{4, 5, 6}, 0)
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	l, err := linalg.Length2([]float64{3, 4}, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, l)

	l, err = linalg.Length4([]float64{0, 1, 1, 1, 1}, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, l)
}

func TestNormalize(t *testing.T) {
	n, err := linalg.Normalize2([]float64{3, 4}, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.6, 0.8}, n, 1e-15)

	// in place
	v := []float64{1, 2, 2}
	_, err = linalg.Normalize3Into(v, 0, v, 0)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1.0 / 3, 2.0 / 3, 2.0 / 3}, v, 1e-15)

	// zero vector is not guarded
	z, err := linalg.Normalize4([]float64{0, 0, 0, 0}, 0)
	require.NoError(t, err)
	for _, c := range z {
		require.True(t, math.IsNaN(c))
	}
}

func TestNormalize_UnitLength(t *testing.T) {
	for _, v := range [][]float64{{1, 1, 1, 1}, {-3, 0.5, 7, 2}, {1e-3, 0, 0, 5e3}} {
		n, err := linalg.Normalize4(v, 0)
		require.NoError(t, err)
		l, err := linalg.Length4(n, 0)
		require.NoError(t, err)
		require.InDelta(t, 1.0, l, 1e-12)
	}
}

func TestCross(t *testing.T) {
	buf := []float64{9, 1, 0, 0, 0, 1, 0}
	z, err := linalg.Cross(buf, 1, buf, 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 1}, z)

	a := []float64{1, 2, 3}
	b := []float64{-4, 0.5, 2}
	c, err := linalg.Cross(a, 0, b, 0)
	require.NoError(t, err)
	da, _ := linalg.Dot3(a, 0, c, 0)
	db, _ := linalg.Dot3(b, 0, c, 0)
	require.InDelta(t, 0, da, 1e-12)
	require.InDelta(t, 0, db, 1e-12)

	// dst may alias an input
	_, err = linalg.CrossInto(a, 0, a, 0, b, 0)
	require.NoError(t, err)
	require.Equal(t, c, a)
}

func TestVectorKernels_ShortInput(t *testing.T) {
	if !array.ParamChecks {
		t.Skip("parameter checks compiled out")
	}
	_, err := linalg.Dot4([]float64{1, 2, 3}, 0, []float64{1, 2, 3, 4}, 0)
	require.ErrorIs(t, err, array.ErrShape)

	_, err = linalg.Cross([]float64{1, 2, 3}, 1, []float64{1, 2, 3}, 0)
	require.ErrorIs(t, err, array.ErrShape)

	_, err = linalg.Normalize3Into(make([]float64, 2), 0, []float64{1, 2, 3}, 0)
	require.ErrorIs(t, err, array.ErrShape)
}
