// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// maxDim is the largest matrix dimension the linalg kernels accept.
const maxDim = 4

// transposeShape is one R×C source shape.
type transposeShape struct{ R, C int }

// matmulShape is one (M×K)·(K×N) product.
type matmulShape struct{ M, K, N int }

const shapesTemplate = `
import "github.com/katalvlaran/lvlalg/array"

// ---------- Transpose ----------
{{range .Data.Transposes}}
// Transpose{{.R}}x{{.C}} returns the {{.C}}x{{.R}} transpose of the column-major {{.R}}x{{.C}} matrix at src[srcOff:].
func Transpose{{.R}}x{{.C}}[T array.Float](src []T, srcOff int) ([]T, error) {
	return TransposeInto(nil, 0, src, srcOff, {{.R}}, {{.C}})
}

// Transpose{{.R}}x{{.C}}Into writes the {{.C}}x{{.R}} transpose of src[srcOff:] into dst at dstOff.
func Transpose{{.R}}x{{.C}}Into[T array.Float](dst []T, dstOff int, src []T, srcOff int) ([]T, error) {
	return TransposeInto(dst, dstOff, src, srcOff, {{.R}}, {{.C}})
}
{{end}}
// ---------- Matmul ----------
{{range .Data.Products}}
// Matmul{{.M}}x{{.K}}x{{.N}} multiplies the {{.M}}x{{.K}} matrix a by the {{.K}}x{{.N}} matrix b into a new {{.M}}x{{.N}} matrix.
func Matmul{{.M}}x{{.K}}x{{.N}}[T array.Float](a []T, aOff int, b []T, bOff int) ([]T, error) {
	return MatmulInto(nil, 0, a, aOff, b, bOff, {{.M}}, {{.K}}, {{.N}})
}

// Matmul{{.M}}x{{.K}}x{{.N}}Into writes the {{.M}}x{{.N}} product a*b into dst at dstOff.
// dst must not overlap a or b.
func Matmul{{.M}}x{{.K}}x{{.N}}Into[T array.Float](dst []T, dstOff int, a []T, aOff int, b []T, bOff int) ([]T, error) {
	return MatmulInto(dst, dstOff, a, aOff, b, bOff, {{.M}}, {{.K}}, {{.N}})
}
{{end}}
`

// shapeTable enumerates every shape with dimensions in 1..maxN.
func shapeTable(maxN int) (transposes []transposeShape, products []matmulShape) {
	dims := lo.RangeFrom(1, maxN)
	for _, r := range dims {
		for _, c := range dims {
			transposes = append(transposes, transposeShape{r, c})
		}
	}
	for _, m := range dims {
		for _, k := range dims {
			for _, n := range dims {
				products = append(products, matmulShape{m, k, n})
			}
		}
	}

	return transposes, products
}

func newShapesCmd() *cobra.Command {
	var (
		t    target
		maxN int
	)
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Generate per-shape Transpose and Matmul wrappers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxN < 1 || maxN > maxDim {
				return fmt.Errorf("flatgen: --max must be in [1, %d], got %d", maxDim, maxN)
			}
			tr, pr := shapeTable(maxN)
			_, err := render(cmd, t, "shapes", shapesTemplate, struct {
				Transposes []transposeShape
				Products   []matmulShape
			}{tr, pr})
			return err
		},
	}
	t.bind(cmd, "linalg", "shapes_gen.go")
	cmd.Flags().IntVar(&maxN, "max", maxDim, "largest matrix dimension to generate")

	return cmd
}
