// SPDX-License-Identifier: MIT

// Package matrix offers the dense float64 substrate of gausskit.
//
// The matrix package provides:
//
//   - Dense: a contiguous row-major implementation of the Matrix interface
//     with bounds-checked accessors and a raw Data() view for kernels.
//   - Arithmetic kernels (Add, Sub, Mul, Transpose, Scale, MatVec) with
//     *Dense fast paths and generic interface fallbacks.
//   - Induced norms (Norm1, NormInf) and tolerant comparison (AllClose, Close).
//   - Constructors (NewZeros, NewIdentity, NewOnes, NewLowerOnes) and thin
//     facades with intention-revealing names (Sum, Diff, Product, T).
//   - Centralized validators returning sentinel errors checkable via errors.Is.
//
// All kernels are deterministic: fixed loop orders, no randomness, no global
// state, and inputs are never mutated — every operation returns a fresh Dense.
//
// See the examples in this package and gauss for usage patterns.
package matrix
