// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
)

func TestNewAndFill(t *testing.T) {
	z, err := array.New[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, z)

	_, err = array.New[float32](-1)
	require.ErrorIs(t, err, array.ErrInvalidArgument)

	f, err := array.Fill(2.5, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 2.5}, f)

	dst := []float64{9, 9, 9, 9}
	out, err := array.FillInto(dst, 1, 0.0, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 0, 0, 9}, out)
}

func TestRange(t *testing.T) {
	up, err := array.Range(1.0, 10.0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, up)

	down, err := array.RangeStep(10.0, 1.0, -1.0)
	require.NoError(t, err)
	require.Len(t, down, 10)
	require.Equal(t, 10.0, down[0])
	require.Equal(t, 1.0, down[9])

	sum, err := array.Add(up, down)
	require.NoError(t, err)
	for _, v := range sum {
		require.Equal(t, 11.0, v)
	}

	auto, err := array.Range(3.0, 1.0)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2, 1}, auto)

	single, err := array.Range(3.0, 3.0)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, single)

	frac, err := array.RangeStep(0.0, 1.0, 0.3)
	require.NoError(t, err)
	require.Empty(t, diffApprox([]float64{0, 0.3, 0.6, 0.9}, frac))
}

func TestRange_Invalid(t *testing.T) {
	cases := map[string][3]float64{
		"zero step":     {0, 1, 0},
		"wrong sign up": {1, 10, -1},
		"wrong sign dn": {10, 1, 1},
		"nan step":      {0, 1, math.NaN()},
		"nan bound":     {math.NaN(), 1, 1},
		"inf bound":     {0, math.Inf(1), 1},
		"tiny step":     {0, 1, 1e-300},
		"span overflow": {-1e308, 1e308, 1},
		"too many":      {0, 1 << 40, 1},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := array.RangeStep(c[0], c[1], c[2])
			require.ErrorIs(t, err, array.ErrInvalidArgument)
		})
	}
}

func TestCopy(t *testing.T) {
	src := []float64{1, 2, 3}
	c := array.Copy(src)
	c[0] = 42
	require.Equal(t, 1.0, src[0])
	require.Nil(t, array.Copy[float64](nil))

	out, err := array.CopyEx(src, 1, 2, nil, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 3}, out)

	// overlapping shift right within one buffer
	buf := []float64{1, 2, 3, 4}
	_, err = array.CopyEx(buf, 0, 3, buf, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 2, 3}, buf)
}

func TestCopy_ShortDestinationUntouched(t *testing.T) {
	requireChecks(t)
	dst := []float64{7, 7}
	_, err := array.CopyInto(dst, 1, []float64{1, 2})
	require.ErrorIs(t, err, array.ErrShape)
	require.Equal(t, []float64{7, 7}, dst)
}

func TestReverse(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	require.Equal(t, []float64{5, 4, 3, 2, 1}, array.Reverse(a))
	require.Equal(t, a, array.Reverse(array.Reverse(a)))

	in := []float64{1, 2, 3, 4}
	_, err := array.ReverseInto(in, 0, in)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 2, 1}, in)

	out, err := array.ReverseInto(nil, 2, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 2, 1}, out)

	// dst window shifted right by one over its own source
	buf := []float64{1, 2, 3, 4}
	_, err = array.ReverseInto(buf, 1, buf[:3])
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 1}, buf)

	// and shifted left
	buf = []float64{1, 2, 3, 4}
	_, err = array.ReverseInto(buf[:3], 0, buf[1:])
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 2, 4}, buf)
}

func TestSum(t *testing.T) {
	r, _ := array.Range(1.0, 10.0)
	s, err := array.Sum(r, 0, len(r))
	require.NoError(t, err)
	require.Equal(t, 55.0, s)

	s, err = array.Sum(r, 8, 2)
	require.NoError(t, err)
	require.Equal(t, 19.0, s)
}

func TestEqualAndAlmostEqual(t *testing.T) {
	nan := math.NaN()
	require.True(t, array.Equal([]float64{1, 2}, []float64{1, 2}))
	require.False(t, array.Equal([]float64{1, 2}, []float64{1}))
	require.False(t, array.Equal([]float64{nan}, []float64{nan}))

	require.True(t, array.AlmostEqual([]float64{1}, []float64{1 + 1e-12}))
	require.False(t, array.AlmostEqual([]float64{1}, []float64{1.001}))
	require.True(t, array.AlmostEqual([]float64{1}, []float64{1.001}, array.WithEpsilon(0.01)))
	require.False(t, array.AlmostEqual([]float64{nan}, []float64{nan}))
	require.True(t, array.AlmostEqual([]float64{nan}, []float64{nan}, array.WithNaNEqual()))
	require.False(t, array.AlmostEqual([]float64{nan}, []float64{nan}, array.WithNaNEqual(), array.WithIEEENaN()))
	require.True(t, array.AlmostEqual([]float64{math.Inf(1)}, []float64{math.Inf(1)}))
}
