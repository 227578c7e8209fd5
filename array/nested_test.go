// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
)

func TestReshape_RowMajor(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	n, err := array.Reshape(src, []int{3, 2})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, n.Shape())
	require.Equal(t, 3, n.Len())

	want := array.Node(
		array.Node(array.Leaf(1.0), array.Leaf(2.0)),
		array.Node(array.Leaf(3.0), array.Leaf(4.0)),
		array.Node(array.Leaf(5.0), array.Leaf(6.0)),
	)
	require.Equal(t, want, n)
	require.Equal(t, src, array.Flatten(n))
}

func TestReshape_Nested(t *testing.T) {
	n, err := array.Reshape([]float64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)

	m, err := array.ReshapeNested(n, []int{3, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, m.Shape())
	require.Equal(t, array.Flatten(n), array.Flatten(m))
}

func TestReshape_EdgeCases(t *testing.T) {
	_, err := array.Reshape([]float64{1, 2}, []int{2, -1})
	require.ErrorIs(t, err, array.ErrInvalidArgument)

	_, err = array.Reshape([]float64{1, 2}, nil)
	require.ErrorIs(t, err, array.ErrInvalidArgument)

	empty, err := array.Reshape[float64](nil, []int{2, 0})
	require.NoError(t, err)
	require.Equal(t, []int{2, 0}, empty.Shape())
	require.Empty(t, array.Flatten(empty))

	// extra trailing elements are ignored
	n, err := array.Reshape([]float64{1, 2, 3}, []int{2})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, array.Flatten(n))
}

func TestReshape_TooShort(t *testing.T) {
	requireChecks(t)
	_, err := array.Reshape([]float64{1, 2, 3}, []int{2, 2})
	require.ErrorIs(t, err, array.ErrShape)
}

func TestShapeSize(t *testing.T) {
	n, err := array.ShapeSize([]int{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 24, n)

	n, err = array.ShapeSize([]int{5, 0})
	require.NoError(t, err)
	require.Zero(t, n)

	overflowing := [][]int{
		{1 << 62, 4},
		{math.MaxInt, 2},
		{1 << 32, 1 << 32},
		{1 << 62, 4, 0},
	}
	for _, shape := range overflowing {
		_, err = array.ShapeSize(shape)
		require.ErrorIs(t, err, array.ErrInvalidArgument, "shape %v", shape)
	}
}

func TestReshape_Overflow(t *testing.T) {
	buf := []float64{1, 2, 3, 4}

	_, err := array.Reshape(buf, []int{1 << 62, 4})
	require.ErrorIs(t, err, array.ErrInvalidArgument)

	_, err = array.Reshape2(buf, 1<<62, 4)
	require.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestReshape2Flatten2(t *testing.T) {
	rows, err := array.Reshape2([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, rows)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, array.Flatten2(rows))
	require.Equal(t, []float64{1, 2, 3}, array.Flatten2([][]float64{{1}, {}, {2, 3}}))
}

func TestLeaf(t *testing.T) {
	l := array.Leaf(4.0)
	require.True(t, l.IsLeaf())
	require.Empty(t, l.Shape())
	require.Equal(t, []float64{4}, array.Flatten(l))
	require.False(t, array.Node[float64]().IsLeaf())
}
