// Package gausskit is a small dense linear-algebra toolkit built around one
// classic routine: LU factorization by Gaussian elimination WITHOUT pivoting,
// with the multipliers packed in place and the arithmetic operations counted.
//
// 🚀 What is gausskit?
//
//	A deterministic, dependency-light library that brings together:
//		• Matrix substrate: row-major Dense storage, validators, kernels
//		  (Add/Sub/Mul/Transpose/Scale/MatVec), norms and tolerant comparison
//		• Elimination engine: packed LU factor, L/U split, operation counter
//		• Factor consumers: triangular Solve and Determinant over the packed factor
//		• gonum bridge: lossless converters to/from gonum.org/v1/gonum/mat
//		• Showcase CLI: cmd/gausskit reproduces the reference 7×7 scenario
//
// ✨ Why choose gausskit?
//
//   - Deterministic by construction – fixed loop orders, no randomness, no pivoting
//   - Honest error surface – sentinel errors, %w wrapping, errors.Is everywhere
//   - Pure Go kernels – flat-slice fast paths with generic interface fallbacks
//   - Teaching-grade instrumentation – the elimination op count is exact and stable
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/    — Dense storage, validators, arithmetic kernels, norms, AllClose
//	gauss/     — Packed, SplitLU, Eliminate, Solve, Determinant
//	gonumconv/ — converters between matrix.Dense and gonum mat.Dense
//	cmd/       — the gausskit demonstration binary
//
// Quick sketch of the packed factor for a 3×3 input:
//
//	⎡ u₀₀ u₀₁ u₀₂ ⎤      U on and above the diagonal,
//	⎢ l₁₀ u₁₁ u₁₂ ⎥  ←   L's multipliers strictly below it
//	⎣ l₂₀ l₂₁ u₂₂ ⎦      (L's own diagonal is implicitly 1).
//
// No pivoting means a zero pivot silently yields ±Inf/NaN — that trade of
// stability for determinism is intentional and documented on every API.
//
//	go get github.com/katalvlaran/gausskit
package gausskit
