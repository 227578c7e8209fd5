// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/array"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
)

type FixedSuite struct {
	suite.Suite
	rot90 matrix.Matrix2 // [[0 -1] [1 0]]
	m3    matrix.Matrix3
	tr4   matrix.Matrix4 // translation by (1, 2, 3)
}

func (s *FixedSuite) SetupTest() {
	s.rot90 = matrix.New2(0, 1, -1, 0)
	s.m3 = matrix.New3(1, 2, 3, 4, 5, 6, 7, 8, 10)
	s.tr4 = matrix.Identity4()
	s.Require().NoError(s.tr4.Set(0, 3, 1))
	s.Require().NoError(s.tr4.Set(1, 3, 2))
	s.Require().NoError(s.tr4.Set(2, 3, 3))
}

func (s *FixedSuite) TestRotation() {
	s.Equal(vector.New2(0, 1), s.rot90.MulVec(vector.New2(1, 0)))
	full := s.rot90.Mul(s.rot90).Mul(s.rot90).Mul(s.rot90)
	s.Equal(matrix.Identity2(), full)
}

func (s *FixedSuite) TestIdentityNeutral() {
	I := matrix.Identity3()
	s.Equal(s.m3, I.Mul(s.m3))
	s.Equal(s.m3, s.m3.Mul(I))
	v := vector.New3(1, -2, 3)
	s.Equal(v, I.MulVec(v))
}

func (s *FixedSuite) TestTransposeTwice() {
	s.Equal(s.m3, s.m3.Transpose().Transpose())
	s.Equal(matrix.New3(1, 4, 7, 2, 5, 8, 3, 6, 10), s.m3.Transpose())
}

func (s *FixedSuite) TestMulIntoAliasing() {
	m := s.m3
	want := m.Mul(m)
	m.MulInto(&m, m)
	s.Equal(want, m)
}

func (s *FixedSuite) TestHomogeneousPoints() {
	s.Equal(vector.New3(2, 3, 4), s.tr4.MulPoint(vector.New3(1, 1, 1)))
	s.Equal(vector.New2(2, 3), s.tr4.MulPoint2(vector.New2(1, 1)))

	m := matrix.Identity3()
	s.Require().NoError(m.Set(0, 2, 5))
	s.Require().NoError(m.Set(1, 2, -2))
	s.Equal(vector.New2(6, -1), m.MulPoint(vector.New2(1, 1)))
}

func (s *FixedSuite) TestRowsCols() {
	col, err := s.m3.Col(1)
	s.Require().NoError(err)
	s.Equal(vector.New3(4, 5, 6), col)

	row, err := s.m3.Row(2)
	s.Require().NoError(err)
	s.Equal(vector.New3(3, 6, 10), row)

	_, err = s.m3.Col(3)
	s.ErrorIs(err, matrix.ErrOutOfRange)
	_, err = s.m3.Row(-1)
	s.ErrorIs(err, matrix.ErrOutOfRange)
}

func (s *FixedSuite) TestArithmetic() {
	a := matrix.New2(1, 2, 3, 4)
	b := matrix.New2(4, 3, 2, 1)
	s.Equal(matrix.New2(5, 5, 5, 5), a.Add(b))
	s.Equal(matrix.New2(-3, -1, 1, 3), a.Sub(b))
	s.Equal(matrix.New2(2, 4, 6, 8), a.Scale(2))
	s.Equal(matrix.New2(-1, -2, -3, -4), a.Neg())
	s.True(a.AlmostEqual(matrix.New2(1, 2, 3, 4+1e-12)))
	s.False(a.AlmostEqual(matrix.New2(1, 2, 3, 4.1)))
	s.True(a.AlmostEqual(matrix.New2(1, 2, 3, 4.1), array.WithEpsilon(0.2)))
}

func (s *FixedSuite) TestFromValuesAndLoad() {
	m, err := matrix.FromValues2(1, 2, 3, 4)
	s.Require().NoError(err)
	s.Equal(matrix.New2(1, 2, 3, 4), m)

	_, err = matrix.FromValues2(1, 2, 3)
	s.ErrorIs(err, array.ErrMissingValue)
	_, err = matrix.FromValues2(1, 2, 3, 4, 5)
	s.ErrorIs(err, array.ErrInvalidArgument)

	buf, err := m.Store(nil, 1)
	s.Require().NoError(err)
	s.Equal([]float64{0, 1, 2, 3, 4}, buf)

	back, err := matrix.Load2(buf, 1)
	s.Require().NoError(err)
	s.Equal(m, back)

	_, err = matrix.Load2(buf, 2)
	s.ErrorIs(err, array.ErrShape)
}

func (s *FixedSuite) TestImplementsMatrix() {
	var m matrix.Matrix = &s.m3
	s.Equal(3, m.Rows())
	v, err := m.At(2, 2)
	s.Require().NoError(err)
	s.Equal(10.0, v)

	d, err := matrix.Mul(m, matrix.Matrix(&s.m3))
	s.Require().NoError(err)
	want := s.m3.Mul(s.m3)
	s.Equal(want[:], d.Data())
}

func (s *FixedSuite) TestString() {
	s.Equal("[0 -1]\n[1 0]", s.rot90.String())
}

func TestFixedSuite(t *testing.T) {
	suite.Run(t, new(FixedSuite))
}
