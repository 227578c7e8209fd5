// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestAddSub(t *testing.T) {
	a := mustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	b := mustDenseFrom(t, 2, 2, 10, 20, 30, 40)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	_, err = matrix.Add(a, mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustDenseFrom(t, 2, 2, 1, 2, 3, 4) // [[1 3] [2 4]]
	b := mustDenseFrom(t, 2, 2, 5, 6, 7, 8) // [[5 7] [6 8]]

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{23, 34, 31, 46}, p.Data())

	_, err = matrix.Mul(a, mustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityNeutral(t *testing.T) {
	m := mustDense(t, 4, 4)
	fillDenseRand(t, m, 7)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	left, err := matrix.Mul(I, m)
	require.NoError(t, err)
	right, err := matrix.Mul(m, I)
	require.NoError(t, err)

	ok, err := matrix.AllClose(left, m)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(right, m)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTransposeAndMatVec(t *testing.T) {
	m := mustDenseFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float64{1, 3, 5, 2, 4, 6}, tr.Data())

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, m.Data(), back.Data())

	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{9, 12}, y)

	_, err = matrix.MatVec(m, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	m := mustDenseFrom(t, 1, 3, 1, -2, 3)
	s, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, -4, 6}, s.Data())
	require.Equal(t, []float64{1, -2, 3}, m.Data())
}

// The At-based gather must agree with the flat-slice path.
func TestFacades_FallbackMatchesFastPath(t *testing.T) {
	a := mustDense(t, 3, 4)
	b := mustDense(t, 4, 2)
	c := mustDense(t, 3, 4)
	fillDenseRand(t, a, 1)
	fillDenseRand(t, b, 2)
	fillDenseRand(t, c, 3)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, fast.Data(), slow.Data())

	fast, err = matrix.Add(a, c)
	require.NoError(t, err)
	slow, err = matrix.Add(hide{a}, c)
	require.NoError(t, err)
	require.Equal(t, fast.Data(), slow.Data())

	fast, err = matrix.Transpose(a)
	require.NoError(t, err)
	slow, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.Equal(t, fast.Data(), slow.Data())
}

func TestAllClose_NaNPolicy(t *testing.T) {
	a := mustDenseFrom(t, 1, 2, 1, math.NaN())
	b := mustDenseFrom(t, 1, 2, 1+1e-12, math.NaN())

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, array.WithNaNEqual())
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, mustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityLike(t *testing.T) {
	I, err := matrix.IdentityLike(mustDense(t, 3, 3))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, I.Data())

	_, err = matrix.IdentityLike(mustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	z, err := matrix.ZerosLike(I)
	require.NoError(t, err)
	require.Equal(t, make([]float64, 9), z.Data())
}

func TestValidators(t *testing.T) {
	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense(t, 1, 1)))

	require.NoError(t, matrix.ValidateShape(4, 4))
	require.ErrorIs(t, matrix.ValidateShape(4, 5), matrix.ErrBadShape)

	require.ErrorIs(t, matrix.ValidateSquare(mustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(mustDense(t, 2, 3), mustDense(t, 3, 1)))
}
