// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// maxArity bounds the accessor family; Get1..Get16 covers a 4x4 matrix.
const maxArity = 16

// arity is the template view of one accessor width.
type arity struct {
	N      int
	Vars   []string // v0..v{N-1}
	Offs   []string // off, off+1, ...
	Zeros  string   // "0, 0, 0" for error returns
	Types  string   // "T, T, T"
	Params string   // "v0, v1, v2 T"
	Elems  string   // "1 element", "3 elements"
	Vals   string   // "1 value", "3 values"
}

// count renders n with a singular or plural noun.
func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func newArity(n int) arity {
	idx := lo.Range(n)
	vars := lo.Map(idx, func(i, _ int) string { return fmt.Sprintf("v%d", i) })

	return arity{
		N:    n,
		Vars: vars,
		Offs: lo.Map(idx, func(i, _ int) string {
			if i == 0 {
				return ""
			}
			return fmt.Sprintf("+%d", i)
		}),
		Zeros:  strings.Join(lo.Times(n, func(int) string { return "0" }), ", "),
		Types:  strings.Join(lo.Times(n, func(int) string { return "T" }), ", "),
		Params: strings.Join(vars, ", ") + " T",
		Elems:  count(n, "element"),
		Vals:   count(n, "value"),
	}
}

const accessorsTemplate = `
{{range .Data}}
// Get{{.N}} returns the {{.Elems}} of src starting at off.
func Get{{.N}}[T Float](src []T, off int) ({{.Types}}, error) {
	if err := CheckSlice("Get{{.N}}", "src", src, off, {{.N}}); err != nil {
		return {{.Zeros}}, err
	}

	return {{range $i, $o := .Offs}}src[off{{$o}}], {{end}}nil
}

// Set{{.N}} writes {{.Vals}} into dst starting at off.
// Nothing is written when the window does not fit.
func Set{{.N}}[T Float](dst []T, off int, {{.Params}}) error {
	if err := CheckSlice("Set{{.N}}", "dst", dst, off, {{.N}}); err != nil {
		return err
	}
	{{$vars := .Vars}}{{range $i, $o := .Offs}}dst[off{{$o}}] = {{index $vars $i}}
	{{end}}
	return nil
}

// Push{{.N}} appends {{.Vals}} to dst and returns the grown slice.
func Push{{.N}}[T Float](dst []T, {{.Params}}) []T {
	return append(dst, {{join .Vars ", "}})
}

// Pop{{.N}} removes the last {{.Elems}} of src. It returns the shortened
// slice followed by the removed values in head-to-tail order.
func Pop{{.N}}[T Float](src []T) ([]T, {{.Types}}, error) {
	n := len(src) - {{.N}}
	if err := CheckSlice("Pop{{.N}}", "src", src, n, {{.N}}); err != nil {
		return src, {{.Zeros}}, err
	}

	return src[:n], {{range $i, $o := .Offs}}src[n{{$o}}], {{end}}nil
}
{{end}}
`

func newAccessorsCmd() *cobra.Command {
	var (
		t    target
		maxN int
	)
	cmd := &cobra.Command{
		Use:   "accessors",
		Short: "Generate Get/Set/Push/Pop for arities 1..max",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxN < 1 || maxN > maxArity {
				return fmt.Errorf("flatgen: --max must be in [1, %d], got %d", maxArity, maxN)
			}
			data := lo.Map(lo.RangeFrom(1, maxN), func(n, _ int) arity { return newArity(n) })
			_, err := render(cmd, t, "accessors", accessorsTemplate, data)
			return err
		},
	}
	t.bind(cmd, "array", "accessors_gen.go")
	cmd.Flags().IntVar(&maxN, "max", maxArity, "largest arity to generate")

	return cmd
}
