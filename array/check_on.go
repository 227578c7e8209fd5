// SPDX-License-Identifier: MIT

//go:build !lvlalg_nocheck

package array

// ParamChecks reports whether shape checks are compiled in.
// Build with -tags lvlalg_nocheck to turn them off.
const ParamChecks = true
