// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

func TestMulVec_Identity(t *testing.T) {
	for n := 2; n <= linalg.MaxDim; n++ {
		I, err := linalg.Identity[float64](n)
		require.NoError(t, err)
		v := []float64{1, -2, 3, -4}[:n]

		var got []float64
		switch n {
		case 2:
			got, err = linalg.MulVec2(I, 0, v, 0)
		case 3:
			got, err = linalg.MulVec3(I, 0, v, 0)
		case 4:
			got, err = linalg.MulVec4(I, 0, v, 0)
		}
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestMulVec2_Rotation(t *testing.T) {
	rot := []float64{0, 1, -1, 0} // 90° counter-clockwise
	got, err := linalg.MulVec2(rot, 0, []float64{1, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, got)

	// result written over the input vector
	v := []float64{0, 1}
	_, err = linalg.MulVec2Into(v, 0, rot, 0, v, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0}, v)
}

func TestMulVec_Homogeneous(t *testing.T) {
	m3, _ := linalg.Identity[float64](3)
	m3[6], m3[7] = 5, -2 // translation in column 2
	p2, err := linalg.MulVec3x2(m3, 0, []float64{1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{6, -1}, p2)

	m4, _ := linalg.Identity[float64](4)
	m4[12], m4[13], m4[14] = 1, 2, 3 // translation in column 3
	p3, err := linalg.MulVec4x3(m4, 0, []float64{1, 1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3, 4}, p3)

	p2, err = linalg.MulVec4x2(m4, 0, []float64{1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, p2)

	// the missing z also defaults to 1, so column 2 contributes
	m4[8] = 100
	p2, err = linalg.MulVec4x2(m4, 0, []float64{1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{102, 3}, p2)
}

func TestMulVec_IntoOffsets(t *testing.T) {
	dst := make([]float64, 5)
	m, _ := linalg.Identity[float64](3)
	out, err := linalg.MulVec3Into(dst, 2, m, 0, []float64{0, 7, 8, 9}, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7, 8, 9}, out)
}

func TestMulVec_ShortInput(t *testing.T) {
	if !array.ParamChecks {
		t.Skip("parameter checks compiled out")
	}
	_, err := linalg.MulVec4(make([]float64, 15), 0, make([]float64, 4), 0)
	require.ErrorIs(t, err, array.ErrShape)
	_, err = linalg.MulVec4x3(make([]float64, 16), 0, make([]float64, 2), 0)
	require.ErrorIs(t, err, array.ErrShape)
}
