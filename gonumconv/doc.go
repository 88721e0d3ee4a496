// Package gonumconv provides two-way adapters between matrix.Dense and
// gonum's mat.Dense:
//   - gonum.org/v1/gonum/mat
//
// Use gonumconv to hand factors to gonum for pretty-printing (mat.Formatted)
// or to cross-check results against gonum's pivoted LU, and to import
// gonum-built matrices into the elimination engine.
package gonumconv
