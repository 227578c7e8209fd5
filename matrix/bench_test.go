// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the matrix facades and the
// fixed-size types, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkD  *matrix.Dense
	sinkM4 matrix.Matrix4
	sinkV3 vector.Vector3
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for n := 2; n <= matrix.MaxDim; n++ {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkMatrix4_Mul(b *testing.B) {
	b.ReportAllocs()
	m := matrix.Identity4()
	o := matrix.New4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	for i := 0; i < b.N; i++ {
		sinkM4 = m.Mul(o)
	}
}

func BenchmarkMatrix4_MulPoint(b *testing.B) {
	b.ReportAllocs()
	m := matrix.Identity4()
	v := vector.New3(1, 2, 3)
	for i := 0; i < b.N; i++ {
		sinkV3 = m.MulPoint(v)
	}
}
