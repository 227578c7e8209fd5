// SPDX-License-Identifier: MIT

// Package array: functional configuration for approximate comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package array

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Near, NearNaN and
	// AlmostEqual unless overridden with WithEpsilon.
	DefaultEpsilon = 1e-9

	// DefaultNaNEqual keeps IEEE-754 semantics: NaN is never equal to NaN.
	DefaultNaNEqual = false
)

const panicEpsilonInvalid = "array: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	nanEqual bool    // DefaultNaNEqual
}

// WithEpsilon sets the absolute tolerance eps: |a-b| <= eps counts as equal.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNaNEqual makes approximate comparisons treat NaN as equal to NaN.
//
// Notes:
//   - This intentionally departs from IEEE-754. It is meant for tests and
//     snapshot comparisons where a NaN in both inputs is the expected result.
//   - NaN against a number is still unequal.
func WithNaNEqual() Option {
	return func(o *Options) { o.nanEqual = true }
}

// WithIEEENaN restores the default IEEE-754 behavior (NaN != NaN).
func WithIEEENaN() Option {
	return func(o *Options) { o.nanEqual = false }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon, nanEqual: DefaultNaNEqual}
}

// Epsilon reports the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// NaNEqual reports whether NaN compares equal to NaN.
func (o Options) NaNEqual() bool { return o.nanEqual }

// gatherOptions applies opts over DefaultOptions in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// near is the scalar kernel behind Near/NearNaN/AlmostEqual.
// Infinities of the same sign compare equal; Inf-Inf would otherwise be NaN.
func near(a, b, eps float64, nanEqual bool) bool {
	if a == b {
		return true
	}
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return nanEqual && aNaN && bNaN
	}

	return math.Abs(a-b) <= eps
}
