// SPDX-License-Identifier: MIT

//go:build lvlalg_nocheck

package array

// ParamChecks reports whether shape checks are compiled in.
const ParamChecks = false
