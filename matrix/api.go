// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros/NewLowerOnes to build matrices with explicit
//     shapes and neutral elements.
//   - For tolerant equality with configurable policy, use Close(...Option).

package matrix

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init (constructor).
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the unit-diagonal seed when splitting a packed LU factor.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1.0) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// NewOnes returns a rows×cols matrix with every entry equal to 1.
// Determinism: single flat fill over the backing slice.
// Complexity: O(r*c).
//
// AI-Hints: Handy as a mass/summation operand (RowSums uses a ones vector
// internally for the same reason).
func NewOnes(rows, cols int) (*Dense, error) {
	// Allocate via the strict constructor.
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	// Fill the flat buffer deterministically.
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// NewLowerOnes returns the n×n STRICTLY lower-triangular all-ones matrix:
// ones below the main diagonal, zeros on and above it.
// Determinism: fixed i→j fill over the strict lower triangle.
// Complexity: O(n^2) zeroing (constructor) + O(n^2) triangle writes.
//
// AI-Hints: The showcase matrix of the elimination engine is
// I − NewLowerOnes(n) with its last column forced to ones.
func NewLowerOnes(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Fill the strict lower triangle (j < i) deterministically.
	var i, j int // loop iterators
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			m.data[i*n+j] = 1.0 // flat row-major write, bounds guaranteed by construction
		}
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
//
// AI-Hints: Useful for staging buffers or accumulating into fresh containers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
//
// AI-Hints: Handy to seed reconstruction checks (L·U vs A) with a neutral element.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err) // wrap with call-site tag
	}
	// Construct the identity of matching dimension.
	return NewIdentity(m.Rows()) // returns (*Dense, error)
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
//
// AI-Hints: Prefer passing *Dense operands for single flat-loop fast-path.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: mᵀ.
// Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale: alpha * m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (Matrix, error) { return Scale(m, alpha) }

// MatVecMul is an alias for MatVec: y = M·x.
// Complexity: O(rc).
func MatVecMul(m Matrix, x []float64) ([]float64, error) { return MatVec(m, x) }

// ---------- Reductions ----------

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
// AI-Hints: With Abs-free semantics this is NOT NormInf; use NormInf for
// the maximum absolute row sum.
func RowSums(m Matrix) ([]float64, error) {
	// Build an all-ones vector of length equal to the number of columns.
	cols := m.Cols()              // O(1) read of dimension
	ones := make([]float64, cols) // allocate the vector once
	for j := 0; j < cols; j++ {   // deterministic fill
		ones[j] = 1.0 // neutral element for summation
	}

	// Multiply m by the ones vector to get per-row sums.
	return MatVec(m, ones) // O(rc), kernel validates lengths
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Implementation: T(m) then MatVec with ones(rows).
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	// Transpose m first.
	mt, err := Transpose(m) // O(rc)
	if err != nil {
		return nil, matrixErrorf("ColSums", err) // wrap with context
	}
	// Build an all-ones vector of length equal to the (transposed) number of columns,
	// which equals the original number of rows.
	rows := mt.Cols()             // == m.Rows()
	ones := make([]float64, rows) // allocate the vector once
	for i := 0; i < rows; i++ {   // deterministic fill
		ones[i] = 1.0 // neutral element for summation
	}
	// Multiply to get per-column sums of the original matrix.
	return MatVec(mt, ones) // O(rc)
}

// ---------- Numeric compare (thin wrappers → ew*) ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf. Deterministic.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for invariance tests in unit tests.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Close is the option-driven form of AllClose, resolving tolerances from the
// package defaults (DefaultRtol, DefaultAtol) and any WithRtol/WithAtol setters.
// Time: O(r*c). Space: O(1). Deterministic.
//
// AI-Hints:
//   - Use Close(a, b) for "are these equal up to rounding noise" checks;
//     reach for explicit AllClose only when tolerances are data, not policy.
func Close(a, b Matrix, opts ...Option) (bool, error) {
	// Resolve the effective comparison policy once.
	o := gatherOptions(opts...)

	// Delegate to the canonical elementwise kernel.
	return ewAllClose(a, b, o.rtol, o.atol)
}
