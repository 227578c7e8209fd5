// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the facades and fixed types.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based gather path in the facades.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustDenseFrom builds an r×c *Dense from column-major vals or fails the test.
func mustDenseFrom(tb testing.TB, r, c int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with values in [-1, 1) from a seeded source.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := range m.Data() {
		m.Data()[i] = rng.Float64()*2 - 1
	}
}
