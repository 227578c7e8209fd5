// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// components names vector lanes in index order.
var components = []string{"X", "Y", "Z", "W"}

// swizzle is one accessor such as Vector3.ZX.
type swizzle struct {
	Recv    string // receiver type, e.g. "Vector3"
	Name    string // method name, e.g. "ZX"
	Result  string // result type, e.g. "Vector2"
	Indexes []int
	Parts   string // "v[2], v[0]"
	Doc     string // "(v.Z, v.X)"
}

// permutations returns every ordered selection of k distinct indexes from 0..n-1.
func permutations(n, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	for _, tail := range permutations(n, k-1) {
		for i := 0; i < n; i++ {
			if lo.Contains(tail, i) {
				continue
			}
			out = append(out, append(append([]int{}, tail...), i))
		}
	}

	return out
}

// swizzleTable lists the 2- and 3-lane swizzles of Vector2..Vector4.
func swizzleTable() []swizzle {
	var out []swizzle
	for n := 2; n <= 4; n++ {
		for k := 2; k <= min(n, 3); k++ {
			for _, idx := range permutations(n, k) {
				names := lo.Map(idx, func(i, _ int) string { return components[i] })
				out = append(out, swizzle{
					Recv:    fmt.Sprintf("Vector%d", n),
					Name:    strings.Join(names, ""),
					Result:  fmt.Sprintf("Vector%d", k),
					Indexes: idx,
					Parts:   strings.Join(lo.Map(idx, func(i, _ int) string { return fmt.Sprintf("v[%d]", i) }), ", "),
					Doc:     "(" + strings.Join(lo.Map(names, func(s string, _ int) string { return "v." + s }), ", ") + ")",
				})
			}
		}
	}

	return out
}

const swizzlesTemplate = `
{{range .Data}}
// {{.Name}} returns {{.Doc}}.
func (v {{.Recv}}) {{.Name}}() {{.Result}} { return {{.Result}}{ {{.Parts}} } }
{{end}}
`

func newSwizzlesCmd() *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:   "swizzles",
		Short: "Generate component swizzles for Vector2..Vector4",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := render(cmd, t, "swizzles", swizzlesTemplate, swizzleTable())
			return err
		},
	}
	t.bind(cmd, "vector", "swizzle_gen.go")

	return cmd
}
