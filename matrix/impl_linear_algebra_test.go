// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gausskit/matrix"
)

func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	const rows, cols = 3, 3
	var (
		i, j int
		v    float64
		err  error
	)

	base := MustDense(t, rows, cols)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = float64(i*cols + j + 1)
			MustSet(t, base, i, j, v)
		}
	}

	wrapped := hide{base}

	// Compare Add(base, base) vs Add(wrapped, base)
	sum1, err := matrix.Add(base, base)
	if err != nil {
		t.Fatalf("matrix.Add(base, base): %v", err)
	}
	sum2, err := matrix.Add(wrapped, base)
	if err != nil {
		t.Fatalf("matrix.Add(wrapped, base): %v", err)
	}

	var a, b float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			a = MustAt(t, sum1, i, j)
			b = MustAt(t, sum2, i, j)
			if a != b {
				t.Fatalf("mismatch at [%d,%d]", i, j)
			}
		}
	}
}

// ---------- Add / Sub ----------

func TestAdd_FastPath_3x3_Correctness(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	b := NewFilledDense(t, 3, 3, []float64{
		9, 8, 7,
		6, 5, 4,
		3, 2, 1,
	})

	got, err := matrix.Add(a, b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	CompareExact(t, [][]float64{
		{10, 10, 10},
		{10, 10, 10},
		{10, 10, 10},
	}, got)
}

func TestSub_Fallback_MatchesFast(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 4, 5)
	b := MustDense(t, 4, 5)
	RandomFill(t, a, 101)
	RandomFill(t, b, 202)

	fast, err := matrix.Sub(a, b)
	if err != nil {
		t.Fatalf("Sub(fast): %v", err)
	}
	slow, err := matrix.Sub(hide{a}, b)
	if err != nil {
		t.Fatalf("Sub(fallback): %v", err)
	}
	CompareClose(t, fast, slow, 0, 0) // both paths must agree bitwise
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddSub_NilOperand(t *testing.T) {
	a := MustDense(t, 2, 2)

	_, err := matrix.Add(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Mul ----------

func TestMul_FastPath_Known_Correctness(t *testing.T) {
	t.Parallel()

	// (2×3) × (3×2) → (2×2), hand-computed fixture.
	a := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	b := NewFilledDense(t, 3, 2, []float64{
		7, 8,
		9, 10,
		11, 12,
	})

	got, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	CompareExact(t, [][]float64{
		{58, 64},
		{139, 154},
	}, got)
}

func TestMul_Fallback_MatchesFast(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 3, 4)
	b := MustDense(t, 4, 3)
	RandomFill(t, a, 7)
	RandomFill(t, b, 13)

	fast, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul(fast): %v", err)
	}
	slow, err := matrix.Mul(hide{a}, hide{b})
	if err != nil {
		t.Fatalf("Mul(fallback): %v", err)
	}
	// Loop orders differ between paths (i→k→j vs i→j→k); allow rounding noise.
	CompareClose(t, fast, slow, 1e-15, 1e-15)
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3) // inner dims 3 vs 2 do not align

	_, err := matrix.Mul(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	const n = 5
	a := MustDense(t, n, n)
	RandomFill(t, a, 99)
	I := IdentityDense(t, n)

	left, err := matrix.Mul(I, a)
	if err != nil {
		t.Fatalf("Mul(I,a): %v", err)
	}
	right, err := matrix.Mul(a, I)
	if err != nil {
		t.Fatalf("Mul(a,I): %v", err)
	}
	CompareClose(t, left, a, 0, 0)
	CompareClose(t, right, a, 0, 0)
}

// ---------- Transpose ----------

func TestTranspose_Rectangular_Correctness(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	got, err := matrix.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	CompareExact(t, [][]float64{
		{1, 4},
		{2, 5},
		{3, 6},
	}, got)
}

func TestTranspose_Involution_NoMutation(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 4)
	RandomFill(t, m, 5)
	before := m.Clone()

	mt, err := matrix.Transpose(m)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	back, err := matrix.Transpose(mt)
	if err != nil {
		t.Fatalf("Transpose(Transpose): %v", err)
	}

	CompareClose(t, back, m, 0, 0)   // (mᵀ)ᵀ == m, bitwise
	CompareClose(t, m, before, 0, 0) // input never mutated
}

// ---------- Scale ----------

func TestScale_FastAndFallback(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, -2, 3, -4})

	fast, err := matrix.Scale(m, 2.5)
	if err != nil {
		t.Fatalf("Scale(fast): %v", err)
	}
	CompareExact(t, [][]float64{
		{2.5, -5},
		{7.5, -10},
	}, fast)

	slow, err := matrix.Scale(hide{m}, 2.5)
	if err != nil {
		t.Fatalf("Scale(fallback): %v", err)
	}
	CompareClose(t, fast, slow, 0, 0)
}

func TestScale_ZeroAlpha(t *testing.T) {
	m := MustDense(t, 3, 3)
	RandomFill(t, m, 17)

	got, err := matrix.Scale(m, 0)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	zero := MustDense(t, 3, 3)
	CompareClose(t, got, zero, 0, 0)
}

// ---------- MatVec ----------

func TestMatVec_Known_Correctness(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	y, err := matrix.MatVec(m, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("MatVec: %v", err)
	}
	if y[0] != 6 || y[1] != 15 {
		t.Fatalf("MatVec = %v, want [6 15]", y)
	}
}

func TestMatVec_LengthMismatch(t *testing.T) {
	m := MustDense(t, 2, 3)
	_, err := matrix.MatVec(m, []float64{1, 2}) // needs length 3
	AssertErrorIs(t, err, matrix.ErrVectorLength)

	_, err = matrix.MatVec(m, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec_Fallback_Wrapped(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 4, 4)
	RandomFill(t, m, 23)
	x := []float64{0.5, -1, 2, 0.25}

	fast, err := matrix.MatVec(m, x)
	if err != nil {
		t.Fatalf("MatVec(fast): %v", err)
	}
	slow, err := matrix.MatVec(hide{m}, x)
	if err != nil {
		t.Fatalf("MatVec(fallback): %v", err)
	}
	for i := range fast {
		if fast[i] != slow[i] {
			t.Fatalf("path mismatch at %d: %v vs %v", i, fast[i], slow[i])
		}
	}
}

// ---------- Facades & reductions ----------

func TestFacades_DelegateToKernels(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{4, 3, 2, 1})

	sum, err := matrix.Sum(a, b)
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	CompareExact(t, [][]float64{{5, 5}, {5, 5}}, sum)

	diff, err := matrix.Diff(a, b)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	CompareExact(t, [][]float64{{-3, -1}, {1, 3}}, diff)

	prod, err := matrix.Product(a, b)
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	CompareExact(t, [][]float64{{8, 5}, {20, 13}}, prod)

	tr, err := matrix.T(a)
	if err != nil {
		t.Fatalf("T: %v", err)
	}
	CompareExact(t, [][]float64{{1, 3}, {2, 4}}, tr)
}

func TestRowSums_ColSums(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	rs, err := matrix.RowSums(m)
	if err != nil {
		t.Fatalf("RowSums: %v", err)
	}
	if rs[0] != 6 || rs[1] != 15 {
		t.Fatalf("RowSums = %v, want [6 15]", rs)
	}

	cs, err := matrix.ColSums(m)
	if err != nil {
		t.Fatalf("ColSums: %v", err)
	}
	if cs[0] != 5 || cs[1] != 7 || cs[2] != 9 {
		t.Fatalf("ColSums = %v, want [5 7 9]", cs)
	}
}

// ---------- Constructors ----------

func TestConstructors_OnesAndLowerOnes(t *testing.T) {
	t.Parallel()

	ones, err := matrix.NewOnes(2, 3)
	if err != nil {
		t.Fatalf("NewOnes: %v", err)
	}
	CompareExact(t, [][]float64{{1, 1, 1}, {1, 1, 1}}, ones)

	lo, err := matrix.NewLowerOnes(3)
	if err != nil {
		t.Fatalf("NewLowerOnes: %v", err)
	}
	// Strictly lower triangle only: zeros on and above the diagonal.
	CompareExact(t, [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
	}, lo)
}

func TestIdentityLike_RequiresSquare(t *testing.T) {
	rect := MustDense(t, 2, 3)
	_, err := matrix.IdentityLike(rect)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	sq := MustDense(t, 3, 3)
	I, err := matrix.IdentityLike(sq)
	if err != nil {
		t.Fatalf("IdentityLike: %v", err)
	}
	CompareExact(t, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, I)
}
