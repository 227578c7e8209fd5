// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
)

func TestGetSet(t *testing.T) {
	buf := []float64{0, 1, 2, 3, 4, 5}
	x, y, z, err := array.Get3(buf, 2)
	require.NoError(t, err)
	require.Equal(t, [3]float64{2, 3, 4}, [3]float64{x, y, z})

	require.NoError(t, array.Set2(buf, 4, 40, 50))
	require.Equal(t, []float64{0, 1, 2, 3, 40, 50}, buf)

	v, err := array.Get1(buf, 5)
	require.NoError(t, err)
	require.Equal(t, 50.0, v)
}

func TestGetSet16(t *testing.T) {
	buf := make([]float32, 17)
	require.NoError(t, array.Set16(buf, 1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16))
	v0, _, _, _, _, _, _, _, _, _, _, _, _, _, _, v15, err := array.Get16(buf, 1)
	require.NoError(t, err)
	require.Equal(t, float32(1), v0)
	require.Equal(t, float32(16), v15)
	require.Zero(t, buf[0])
}

func TestSet_OutOfRangeLeavesDestination(t *testing.T) {
	requireChecks(t)
	buf := []float64{0, 0, 0, 0}
	err := array.Set3(buf, 2, 1, 2, 3)
	require.ErrorIs(t, err, array.ErrShape)
	require.Equal(t, []float64{0, 0, 0, 0}, buf)

	_, _, err = array.Get2(buf, -1)
	require.ErrorIs(t, err, array.ErrShape)
}

func TestPushPop(t *testing.T) {
	var s []float64
	s = array.Push3(s, 1, 2, 3)
	s = array.Push1(s, 4)
	require.Equal(t, []float64{1, 2, 3, 4}, s)

	rest, a, b, err := array.Pop2(s)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, rest)
	require.Equal(t, 3.0, a)
	require.Equal(t, 4.0, b)
}

func TestPop_TooShort(t *testing.T) {
	requireChecks(t)
	s := []float64{1}
	rest, _, _, err := array.Pop2(s)
	require.ErrorIs(t, err, array.ErrShape)
	require.Equal(t, s, rest)
}
