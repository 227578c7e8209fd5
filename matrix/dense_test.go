// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	for r := 1; r <= matrix.MaxDim; r++ {
		for c := 1; c <= matrix.MaxDim; c++ {
			m, err := matrix.NewDense(r, c)
			require.NoError(t, err)
			require.Equal(t, r, m.Rows())
			require.Equal(t, c, m.Cols())
			require.Len(t, m.Data(), r*c)
		}
	}

	for _, bad := range [][2]int{{0, 1}, {1, 0}, {5, 1}, {1, 5}, {-1, 2}} {
		m, err := matrix.NewDense(bad[0], bad[1])
		require.Nil(t, m)
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestNewDenseFrom_ColumnMajor(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	m := mustDenseFrom(t, 2, 3, src...)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	require.Equal(t, "[1 3 5]\n[2 4 6]", m.String())

	// data is copied
	src[0] = 99
	v, _ = m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSetBounds(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 7))
	require.Equal(t, []float64{0, 7, 0, 0}, m.Data())

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.Equal(t, []float64{0, 7, 0, 0}, m.Data())
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := mustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}
