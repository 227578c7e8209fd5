// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Convert between flat sequences and rectangular nested structures.
//   - Reshape walks the Cartesian product of the shape in row-major nesting
//     order (last dimension varies fastest); Flatten is the inverse walk.

package array

import (
	"math"

	"github.com/samber/lo"
)

// Nested is a rectangular, row-major nesting of values produced by Reshape.
// A leaf carries a single Value; an inner node carries Items (possibly
// empty when its dimension is 0).
type Nested[T Float] struct {
	Items []Nested[T]
	Value T
	leaf  bool
}

// Leaf wraps a single value as a nested leaf.
func Leaf[T Float](v T) Nested[T] { return Nested[T]{Value: v, leaf: true} }

// Node wraps items as an inner node.
func Node[T Float](items ...Nested[T]) Nested[T] {
	if items == nil {
		items = []Nested[T]{}
	}
	return Nested[T]{Items: items}
}

// IsLeaf reports whether n is a single value.
func (n Nested[T]) IsLeaf() bool { return n.leaf }

// Len returns the number of direct children (0 for leaves).
func (n Nested[T]) Len() int { return len(n.Items) }

// Shape returns the dimension sizes of n, following the first child at each
// level. Reshape always produces rectangular nestings, so this is exact for
// its output.
func (n Nested[T]) Shape() []int {
	var shape []int
	for cur := n; !cur.leaf; {
		shape = append(shape, len(cur.Items))
		if len(cur.Items) == 0 {
			break
		}
		cur = cur.Items[0]
	}

	return shape
}

// ShapeSize returns the product of the dimension sizes.
//
// Errors:
//   - ErrInvalidArgument when shape is empty, holds a negative entry or its
//     product does not fit in an int.
func ShapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, invalidf(opReshape, "shape has no dimensions")
	}
	if _, bad := lo.Find(shape, func(d int) bool { return d < 0 }); bad {
		return 0, invalidf(opReshape, "negative dimension in shape %v", shape)
	}

	// nonzero dimensions must multiply without wrapping, even when a zero
	// dimension makes the total empty
	nonzero := lo.Filter(shape, func(d, _ int) bool { return d > 0 })
	size := 1
	for _, d := range nonzero {
		if size > math.MaxInt/d {
			return 0, invalidf(opReshape, "shape %v overflows int", shape)
		}
		size *= d
	}
	if len(nonzero) < len(shape) {
		return 0, nil
	}

	return size, nil
}

// Reshape builds a nested structure of the given shape from the head of src.
// Reshape([1 2 3 4 5 6], [3 2]) yields {{1,2},{3,4},{5,6}}.
//
// Errors:
//   - ErrInvalidArgument for an empty shape or a negative dimension.
//   - *ShapeError when src holds fewer elements than the shape needs.
//     Extra trailing elements are ignored.
func Reshape[T Float](src []T, shape []int) (Nested[T], error) {
	size, err := ShapeSize(shape)
	if err != nil {
		return Nested[T]{}, err
	}
	if err = CheckSlice(opReshape, "src", src, 0, size); err != nil {
		return Nested[T]{}, err
	}
	pos := 0

	return build(src, shape, &pos), nil
}

// build consumes src from *pos for one level of shape.
func build[T Float](src []T, shape []int, pos *int) Nested[T] {
	items := make([]Nested[T], shape[0])
	for i := range items {
		if len(shape) == 1 {
			items[i] = Leaf(src[*pos])
			*pos++
			continue
		}
		items[i] = build(src, shape[1:], pos)
	}

	return Nested[T]{Items: items}
}

// ReshapeNested flattens n and reshapes the result to shape.
func ReshapeNested[T Float](n Nested[T], shape []int) (Nested[T], error) {
	return Reshape(Flatten(n), shape)
}

// Flatten returns the leaves of n in row-major order. It is the reshape of
// n to the one-dimensional shape [size].
func Flatten[T Float](n Nested[T]) []T {
	out := make([]T, 0, countLeaves(n))

	return appendLeaves(out, n)
}

func countLeaves[T Float](n Nested[T]) int {
	if n.leaf {
		return 1
	}
	total := 0
	for _, it := range n.Items {
		total += countLeaves(it)
	}

	return total
}

func appendLeaves[T Float](out []T, n Nested[T]) []T {
	if n.leaf {
		return append(out, n.Value)
	}
	for _, it := range n.Items {
		out = appendLeaves(out, it)
	}

	return out
}

// Reshape2 is the two-dimensional shortcut of Reshape returning [][]T.
// Rows share no memory with src.
func Reshape2[T Float](src []T, rows, cols int) ([][]T, error) {
	size, err := ShapeSize([]int{rows, cols})
	if err != nil {
		return nil, err
	}
	if err = CheckSlice(opReshape, "src", src, 0, size); err != nil {
		return nil, err
	}
	out := make([][]T, rows)
	for i := range out {
		out[i] = Copy(src[i*cols : (i+1)*cols])
	}

	return out, nil
}

// Flatten2 concatenates rows in order. Ragged input is accepted.
func Flatten2[T Float](rows [][]T) []T {
	total := lo.SumBy(rows, func(r []T) int { return len(r) })
	out := make([]T, 0, total)
	for _, r := range rows {
		out = append(out, r...)
	}

	return out
}
