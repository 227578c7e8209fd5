// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvlalg/array"
)

// requireChecks skips tests that assert shape errors when the kernels are
// built with lvlalg_nocheck.
func requireChecks(t *testing.T) {
	t.Helper()
	if !array.ParamChecks {
		t.Skip("parameter checks compiled out")
	}
}

// approx compares float slices within 1e-12, treating NaN as equal to NaN.
var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-12), cmpopts.EquateNaNs()}

func diffApprox(want, got []float64) string { return cmp.Diff(want, got, approx) }
