// SPDX-License-Identifier: MIT

package array

// Float is the element constraint shared by every kernel in this module.
// Integer element types are deliberately excluded: Mod, Pow, Lerp and the
// epsilon comparisons are defined in floating point.
type Float interface {
	~float32 | ~float64
}

// Operation tags used when wrapping errors. Keep them equal to the exported
// function names so messages can be grepped back to the call site.
const (
	opNew         = "New"
	opFill        = "Fill"
	opRange       = "Range"
	opCopy        = "Copy"
	opReverse     = "Reverse"
	opReshape     = "Reshape"
	opFlatten     = "Flatten"
	opMap         = "Map"
	opZip         = "Zip"
	opMulAdd      = "MulAdd"
	opLerp        = "Lerp"
	opNegate      = "Negate"
	opSum         = "Sum"
	opAlmostEqual = "AlmostEqual"
)
