// SPDX-License-Identifier: MIT

package array_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/array"
)

var (
	benchSizes = []int{16, 256, 4096}
	sinkS      []float64
	sinkF      float64
)

func randSlice(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()
	}

	return out
}

func BenchmarkAddInto(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randSlice(n, 1), randSlice(n, 2)
			dst := make([]float64, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := array.AddInto(dst, 0, x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = out
			}
		})
	}
}

func BenchmarkMulAddEx(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y, z := randSlice(n, 1), randSlice(n, 2), randSlice(n, 3)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := array.MulAddEx(x, 0, n, y, 0, z, 0, x, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = out
			}
		})
	}
}

func BenchmarkSum(b *testing.B) {
	x := randSlice(4096, 7)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, err := array.Sum(x, 0, len(x))
		if err != nil {
			b.Fatal(err)
		}
		sinkF = s
	}
}
