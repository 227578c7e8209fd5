// SPDX-License-Identifier: MIT

package linalg_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/linalg"
)

func TestTranspose(t *testing.T) {
	m := []float64{1, 2, 3, 4, 5, 6} // 2x3: [[1 3 5] [2 4 6]]
	tr, err := linalg.Transpose2x3(m, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5, 2, 4, 6}, tr)

	back, err := linalg.Transpose3x2(tr, 0)
	require.NoError(t, err)
	require.Equal(t, m, back)

	_, err = linalg.Transpose(m, 0, 5, 1)
	require.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestMatmul(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6} // 2x3
	b := []float64{1, 2, 3, 4, 5, 6} // 3x2
	p, err := linalg.Matmul2x3x2(a, 0, b, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{22, 28, 49, 64}, p)

	// operands packed into one buffer with offsets
	buf := append([]float64{0}, append(a, b...)...)
	out := make([]float64, 6)
	_, err = linalg.Matmul2x3x2Into(out, 2, buf, 1, buf, 7)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 22, 28, 49, 64}, out)

	_, err = linalg.Matmul(a, 0, b, 0, 2, 0, 2)
	require.ErrorIs(t, err, array.ErrInvalidArgument)
}

func TestMatmul_ShortInput(t *testing.T) {
	if !array.ParamChecks {
		t.Skip("parameter checks compiled out")
	}
	_, err := linalg.Matmul3x3x3(make([]float64, 8), 0, make([]float64, 9), 0)
	require.ErrorIs(t, err, array.ErrShape)
}

func TestIdentity(t *testing.T) {
	I, err := linalg.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, I)

	dst := []float64{7, 7, 7, 7, 7}
	_, err = linalg.IdentityInto(dst, 1, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 1, 0, 0, 1}, dst)

	_, err = linalg.Identity[float64](0)
	require.ErrorIs(t, err, array.ErrInvalidArgument)
}

// ShapeSuite checks algebraic identities on every supported shape.
type ShapeSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *ShapeSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

func (s *ShapeSuite) random(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.Float64()*2 - 1
	}

	return out
}

func (s *ShapeSuite) TestTransposeTwice() {
	for r := 1; r <= linalg.MaxDim; r++ {
		for c := 1; c <= linalg.MaxDim; c++ {
			m := s.random(r * c)
			t1, err := linalg.Transpose(m, 0, r, c)
			s.Require().NoError(err)
			t2, err := linalg.Transpose(t1, 0, c, r)
			s.Require().NoError(err)
			s.Equal(m, t2, fmt.Sprintf("%dx%d", r, c))
		}
	}
}

func (s *ShapeSuite) TestIdentityNeutral() {
	for n := 1; n <= linalg.MaxDim; n++ {
		I, err := linalg.Identity[float64](n)
		s.Require().NoError(err)
		m := s.random(n * n)

		left, err := linalg.Matmul(I, 0, m, 0, n, n, n)
		s.Require().NoError(err)
		right, err := linalg.Matmul(m, 0, I, 0, n, n, n)
		s.Require().NoError(err)
		s.Equal(m, left)
		s.Equal(m, right)
	}
}

func (s *ShapeSuite) TestProductTranspose() {
	// (AB)ᵀ = BᵀAᵀ
	for m := 1; m <= linalg.MaxDim; m++ {
		for k := 1; k <= linalg.MaxDim; k++ {
			for n := 1; n <= linalg.MaxDim; n++ {
				a, b := s.random(m*k), s.random(k*n)
				ab, err := linalg.Matmul(a, 0, b, 0, m, k, n)
				s.Require().NoError(err)
				abT, err := linalg.Transpose(ab, 0, m, n)
				s.Require().NoError(err)

				aT, _ := linalg.Transpose(a, 0, m, k)
				bT, _ := linalg.Transpose(b, 0, k, n)
				bTaT, err := linalg.Matmul(bT, 0, aT, 0, n, k, m)
				s.Require().NoError(err)
				s.True(array.AlmostEqual(abT, bTaT, array.WithEpsilon(1e-12)))
			}
		}
	}
}

func TestShapeSuite(t *testing.T) {
	suite.Run(t, new(ShapeSuite))
}
