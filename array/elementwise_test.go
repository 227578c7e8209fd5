// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
)

func TestArithmetic(t *testing.T) {
	a := []float64{6, -7, 5.5, 2}
	b := []float64{3, 3, 2, -3}

	tests := []struct {
		name string
		fn   func(a, b []float64) ([]float64, error)
		want []float64
	}{
		{"Add", array.Add[float64], []float64{9, -4, 7.5, -1}},
		{"Sub", array.Sub[float64], []float64{3, -10, 3.5, 5}},
		{"Mul", array.Mul[float64], []float64{18, -21, 11, -6}},
		{"Div", array.Div[float64], []float64{2, -7.0 / 3, 2.75, -2.0 / 3}},
		{"Mod", array.Mod[float64], []float64{0, 2, 1.5, -1}},
		{"Pow", array.Pow[float64], []float64{216, -343, 30.25, 0.125}},
		{"Min", array.Min[float64], []float64{3, -7, 2, -3}},
		{"Max", array.Max[float64], []float64{6, 3, 5.5, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(a, b)
			require.NoError(t, err)
			require.Empty(t, diffApprox(tc.want, got))
		})
	}
}

func TestMod_Floored(t *testing.T) {
	got := array.ModConstant([]float64{-7, 7, 7}, 3)
	require.Equal(t, []float64{2, 1, 1}, got)

	got = array.ModConstant([]float64{7}, -3)
	require.Equal(t, []float64{-2}, got)

	got = array.ModConstant([]float64{1}, 0)
	require.True(t, math.IsNaN(got[0]))
}

func TestDivByZero_Propagates(t *testing.T) {
	got := array.DivConstant([]float64{1, -1, 0}, 0)
	require.True(t, math.IsInf(got[0], 1))
	require.True(t, math.IsInf(got[1], -1))
	require.True(t, math.IsNaN(got[2]))
}

func TestComparisons(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{2, 2, 2}

	lt, err := array.Lt(a, b)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false}, lt)

	eq, err := array.Eq(a, b)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, eq)

	require.Equal(t, []bool{false, true, true}, array.GeConstant(a, 2))
	require.Equal(t, []bool{true, false, true}, array.NeConstant(a, 2))

	gt, err := array.GtPattern(a, []float64{0, 5})
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, gt)
}

func TestNear_NaNPolicy(t *testing.T) {
	nan := math.NaN()
	a := []float64{1, nan, 1}
	b := []float64{1 + 1e-12, nan, 2}

	near, err := array.Near(a, b)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false}, near)

	nearNaN, err := array.NearNaN(a, b)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false}, nearNaN)
}

func TestNear_Epsilon(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2.0005, 3.1}

	strict, err := array.Near(a, b)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, false}, strict)

	loose, err := array.Near(a, b, array.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false}, loose)

	require.Equal(t, []bool{false, true, false},
		array.NearConstant(a, 2.0005, array.WithEpsilon(1e-3)))

	out, err := array.NearEx(a, 1, 2, b, 1, make([]bool, 3), 1, array.WithEpsilon(0.2))
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, out)

	nan := math.NaN()
	withNaN, err := array.Near([]float64{nan, 1}, []float64{nan, 1.0005},
		array.WithNaNEqual(), array.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, withNaN)

	// NearNaN keeps NaN matching even when IEEE semantics are requested
	forced, err := array.NearNaN([]float64{nan}, []float64{nan}, array.WithIEEENaN())
	require.NoError(t, err)
	require.Equal(t, []bool{true}, forced)
}

func TestPattern_Cyclic(t *testing.T) {
	got, err := array.AddPattern([]float64{1, 2, 3, 4, 5}, []float64{10, 20})
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 13, 24, 15}, got)

	// a pattern as long as a degenerates to the slice form
	same, err := array.MulPattern([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	want, _ := array.Mul([]float64{1, 2}, []float64{3, 4})
	require.Equal(t, want, same)

	_, err = array.AddPattern([]float64{1}, nil)
	require.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestInto_Offsets(t *testing.T) {
	dst := make([]float64, 5)
	out, err := array.AddInto(dst, 2, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 4, 6, 0}, out)
	require.Same(t, &dst[0], &out[0])

	out, err = array.AddEx([]float64{1, 2, 3, 4}, 1, 2, []float64{10, 20, 30}, 0, nil, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 12, 23}, out)

	// in place: dst aliases a
	a := []float64{1, 2, 3}
	_, err = array.SubConstantInto(a, 0, a, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, a)
}

func TestInto_ShortOperandsWriteNothing(t *testing.T) {
	requireChecks(t)
	dst := []float64{7, 7, 7}
	_, err := array.AddInto(dst, 2, []float64{1, 2}, []float64{3, 4})
	require.ErrorIs(t, err, array.ErrShape)
	require.Equal(t, []float64{7, 7, 7}, dst)

	_, err = array.SubEx([]float64{1, 2}, 0, 2, []float64{1}, 0, dst, 0)
	require.ErrorIs(t, err, array.ErrShape)
	require.Equal(t, []float64{7, 7, 7}, dst)
}

func TestFloat32(t *testing.T) {
	got, err := array.Add([]float32{1.5, 2}, []float32{0.5, 1})
	require.NoError(t, err)
	require.Equal(t, []float32{2, 3}, got)
}
