// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric comparison policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The comparison relation is |a-b| ≤ atol + rtol*|b| (elementwise).
//   - atol guards near-zero entries; rtol scales with magnitude. Both are
//     normalized to non-negative finite values at construction time.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric comparison policy.
const (
	// DefaultAtol is the absolute tolerance of Close/AllClose-style checks.
	// Chosen to absorb double-precision rounding noise near zero.
	DefaultAtol = 1e-9

	// DefaultRtol is the relative tolerance of Close/AllClose-style checks,
	// scaled by the magnitude of the reference operand.
	DefaultRtol = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAtolInvalid = "matrix: WithAtol: atol must be finite, non-negative"
	panicRtolInvalid = "matrix: WithRtol: rtol must be finite, non-negative"
)

// isNonFinite reports whether v is NaN or ±Inf.
// Time: O(1). Space: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric comparison policy
	atol float64 // >= 0; DefaultAtol
	rtol float64 // >= 0; DefaultRtol
}

// ---------- Constructors (WithX) ----------

// WithAtol sets the absolute tolerance used by tolerant comparisons.
// Implementation:
//   - Stage 1: validate atol is finite and ≥ 0.
//   - Stage 2: return a setter that writes atol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - atol: non-negative finite absolute tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when atol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - atol dominates near zero where relative tolerance collapses.
//
// AI-Hints:
//   - Pick atol around the expected rounding noise of your pipeline
//     (1e-9..1e-8 for double precision chains of O(n³) kernels).
func WithAtol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAtolInvalid)
	}

	// Assign validated absolute tolerance
	return func(o *Options) { o.atol = atol }
}

// WithRtol sets the relative tolerance used by tolerant comparisons.
// Implementation:
//   - Stage 1: validate rtol is finite and ≥ 0.
//   - Stage 2: return a setter that writes rtol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - rtol: non-negative finite relative tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when rtol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - rtol scales with |b| in the relation |a-b| ≤ atol + rtol*|b|.
//
// AI-Hints:
//   - Set rtol to 0 when you need a purely absolute verdict (regression
//     gates against frozen fixtures).
func WithRtol(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRtolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// ---------- Option Resolution ----------

// NewMatrixOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//   - Stage 3: return the internal Options value.
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Inputs:
//   - opts: zero or more functional setters.
//
// Returns:
//   - Options: internal struct with effective configuration.
//
// Determinism:
//   - Stable for a given sequence of opts.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
//
// Notes:
//   - Most public entry points accept ...Option and call gatherOptions.
//
// AI-Hints:
//   - Compose options close to the comparison call-site for clarity.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from the documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := Options{
		// numeric comparison policy
		atol: DefaultAtol,
		rtol: DefaultRtol,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
