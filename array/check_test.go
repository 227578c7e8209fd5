// SPDX-License-Identifier: MIT

package array_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
)

func TestCheckSlice(t *testing.T) {
	requireChecks(t)
	s := []float64{1, 2, 3}

	tests := []struct {
		name       string
		off, count int
		ok         bool
	}{
		{"whole", 0, 3, true},
		{"tail", 1, 2, true},
		{"empty at end", 3, 0, true},
		{"past end", 2, 2, false},
		{"negative offset", -1, 1, false},
		{"negative count", 0, -1, false},
		{"max offset", math.MaxInt, 1, false},
		{"offset plus count wraps", math.MaxInt - 1, 2, false},
		{"max count", 0, math.MaxInt, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := array.CheckSlice("Op", "s", s, tc.off, tc.count)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, array.ErrShape)
		})
	}

	require.NoError(t, array.CheckSlice[float64]("Op", "s", nil, 0, 0))
}

func TestShapeError_Fields(t *testing.T) {
	requireChecks(t)
	_, _, _, _, err := array.Get4([]float64{1, 2, 3}, 0)

	var se *array.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "Get4", se.Op)
	require.Equal(t, "src", se.Param)
	require.Equal(t, 0, se.Offset)
	require.Equal(t, 4, se.Count)
	require.Equal(t, 3, se.Len)
	require.EqualError(t, err, "array: Get4: src needs [0, 4) but has len 3")
}

func TestPrepareDst(t *testing.T) {
	out, err := array.PrepareDst[float64]("Op", nil, 2, 3)
	require.NoError(t, err)
	require.Len(t, out, 5)

	_, err = array.PrepareDst[float64]("Op", nil, -1, 3)
	require.ErrorIs(t, err, array.ErrShape)

	// off+count would wrap; the nil branch must refuse before allocating
	_, err = array.PrepareDst[float64]("Op", nil, math.MaxInt, 2)
	require.ErrorIs(t, err, array.ErrShape)
	_, err = array.FillInto[float64](nil, math.MaxInt, 1, 2)
	require.ErrorIs(t, err, array.ErrShape)

	dst := make([]float64, 4)
	out, err = array.PrepareDst("Op", dst, 1, 3)
	require.NoError(t, err)
	require.Same(t, &dst[0], &out[0])
}

func TestPrepareDst_NeverGrows(t *testing.T) {
	requireChecks(t)
	_, err := array.PrepareDst("Op", make([]float64, 4), 2, 3)
	require.ErrorIs(t, err, array.ErrShape)
}

func TestAccessors_HugeOffset(t *testing.T) {
	requireChecks(t)
	buf := []float64{1, 2, 3, 4}

	_, _, err := array.Get2(buf, math.MaxInt)
	require.ErrorIs(t, err, array.ErrShape)

	err = array.Set2(buf, math.MaxInt-1, 9, 9)
	require.ErrorIs(t, err, array.ErrShape)
	require.Equal(t, []float64{1, 2, 3, 4}, buf)

	var se *array.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, math.MaxInt-1, se.Offset)
	require.Contains(t, err.Error(), "needs 2 elements from offset")
}
