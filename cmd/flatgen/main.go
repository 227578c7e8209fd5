// SPDX-License-Identifier: MIT

// Command flatgen generates the fixed-arity and fixed-shape wrappers of the
// lvlalg packages.
//
// The hand-written kernels in array and linalg are generic over element type
// and size; flatgen emits the named, arity-specific entry points on top of
// them (Get3, Set16, AddPatternInto, Transpose2x4, Matmul3x3x3, v.ZYX...).
//
// Usage:
//
//	flatgen accessors   --package array  --output accessors_gen.go [--max 16]
//	flatgen elementwise --package array  --output elementwise_gen.go
//	flatgen shapes      --package linalg --output shapes_gen.go [--max 4]
//	flatgen swizzles    --package vector --output swizzle_gen.go
//
// Or via go:generate from inside a package directory:
//
//	//go:generate go run ../cmd/flatgen accessors --package array --output accessors_gen.go
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires every generator subcommand under a fresh root so tests can
// run commands in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flatgen",
		Short:         "Generate fixed-arity and fixed-shape wrappers for lvlalg",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newAccessorsCmd(),
		newElementwiseCmd(),
		newShapesCmd(),
		newSwizzlesCmd(),
	)

	return root
}
