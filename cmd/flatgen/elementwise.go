// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// operator binds an exported name to a scalar kernel in package array.
type operator struct {
	Name   string // exported prefix, e.g. "Add"
	Fn     string // scalar kernel expression, e.g. "addFn[T]"
	Result string // "T" for arithmetic, "bool" for comparisons
	Expr   string // doc expression with two %s operands
	Opts   bool   // trailing ...Option parameter
}

// operators is the full element-wise table. Order is the order of emission.
var operators = []operator{
	{"Add", "addFn[T]", "T", "%s + %s", false},
	{"Sub", "subFn[T]", "T", "%s - %s", false},
	{"Mul", "mulFn[T]", "T", "%s * %s", false},
	{"Div", "divFn[T]", "T", "%s / %s", false},
	{"Mod", "modFn[T]", "T", "%s mod %s (floored, sign of the divisor)", false},
	{"Pow", "powFn[T]", "T", "%s ^ %s", false},
	{"Min", "minFn[T]", "T", "min(%s, %s)", false},
	{"Max", "maxFn[T]", "T", "max(%s, %s)", false},
	{"Eq", "eqFn[T]", "bool", "%s == %s", false},
	{"Ne", "neFn[T]", "bool", "%s != %s", false},
	{"Lt", "ltFn[T]", "bool", "%s < %s", false},
	{"Le", "leFn[T]", "bool", "%s <= %s", false},
	{"Gt", "gtFn[T]", "bool", "%s > %s", false},
	{"Ge", "geFn[T]", "bool", "%s >= %s", false},
	{"Near", "nearWith[T](false, opts)", "bool", "|%s - %s| <= eps", true},
	{"NearNaN", "nearWith[T](true, opts)", "bool", "|%s - %s| <= eps with NaN matching NaN", true},
}

const elementwiseTemplate = `
{{range .Data}}
// ---------- {{.Name}} ----------

// {{.Name}} returns {{expr .Expr "a[i]" "b[i]"}} over len(a) elements.
// b must hold at least len(a) elements.{{if .Opts}}
// eps is DefaultEpsilon unless overridden with WithEpsilon.{{end}}
func {{.Name}}[T Float](a, b []T{{if .Opts}}, opts ...Option{{end}}) ([]{{.Result}}, error) {
	return zipInto("{{.Name}}", nil, 0, a, 0, b, 0, len(a), {{.Fn}})
}

// {{.Name}}Into writes {{expr .Expr "a[i]" "b[i]"}} into dst at dstOff.
func {{.Name}}Into[T Float](dst []{{.Result}}, dstOff int, a, b []T{{if .Opts}}, opts ...Option{{end}}) ([]{{.Result}}, error) {
	return zipInto("{{.Name}}Into", dst, dstOff, a, 0, b, 0, len(a), {{.Fn}})
}

// {{.Name}}Ex writes {{expr .Expr "a[aOff+i]" "b[bOff+i]"}} into dst at dstOff for i < n.
func {{.Name}}Ex[T Float](a []T, aOff, n int, b []T, bOff int, dst []{{.Result}}, dstOff int{{if .Opts}}, opts ...Option{{end}}) ([]{{.Result}}, error) {
	return zipInto("{{.Name}}Ex", dst, dstOff, a, aOff, b, bOff, n, {{.Fn}})
}

// {{.Name}}Constant returns {{expr .Expr "a[i]" "c"}}.
func {{.Name}}Constant[T Float](a []T, c T{{if .Opts}}, opts ...Option{{end}}) []{{.Result}} {
	out, _ := constantInto("{{.Name}}Constant", nil, 0, a, c, {{.Fn}}) // nil dst cannot fail

	return out
}

// {{.Name}}ConstantInto writes {{expr .Expr "a[i]" "c"}} into dst at dstOff.
func {{.Name}}ConstantInto[T Float](dst []{{.Result}}, dstOff int, a []T, c T{{if .Opts}}, opts ...Option{{end}}) ([]{{.Result}}, error) {
	return constantInto("{{.Name}}ConstantInto", dst, dstOff, a, c, {{.Fn}})
}

// {{.Name}}Pattern returns {{expr .Expr "a[i]" "p[i%len(p)]"}}.
func {{.Name}}Pattern[T Float](a, p []T{{if .Opts}}, opts ...Option{{end}}) ([]{{.Result}}, error) {
	return patternInto("{{.Name}}Pattern", nil, 0, a, p, {{.Fn}})
}

// {{.Name}}PatternInto writes {{expr .Expr "a[i]" "p[i%len(p)]"}} into dst at dstOff.
func {{.Name}}PatternInto[T Float](dst []{{.Result}}, dstOff int, a, p []T{{if .Opts}}, opts ...Option{{end}}) ([]{{.Result}}, error) {
	return patternInto("{{.Name}}PatternInto", dst, dstOff, a, p, {{.Fn}})
}
{{end}}
`

func newElementwiseCmd() *cobra.Command {
	var t target
	cmd := &cobra.Command{
		Use:   "elementwise",
		Short: "Generate the named element-wise operators over the generic drivers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := render(cmd, t, "elementwise", elementwiseTemplate, operators)
			return err
		},
	}
	t.bind(cmd, "array", "elementwise_gen.go")

	return cmd
}
