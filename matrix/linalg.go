// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels over any Matrix.
//
// Purpose:
//   - Add, Mul, Transpose, MatVec, ScaleCols, ColumnNorms, LU, Solve, Inverse.
//   - Strict fail-fast validation; every error is wrapped with an op tag.
//
// Notes:
//   - Non-Dense operands are first materialized with asDense (one O(r*c) copy),
//     so each kernel keeps a single flat-slice implementation.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for uniform error wrapping.
const (
	opAdd         = "Add"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opMatVec      = "MatVec"
	opScaleCols   = "ScaleCols"
	opColumnNorms = "ColumnNorms"
	opLU          = "LU"
	opSolve       = "Solve"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := NewDense(r, c, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// Add returns the element-wise sum C = A + B as a fresh Dense.
//
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: one flat loop over the materialized operands.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for k := range res.data {
		res.data[k] = da.data[k] + db.data[k]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, A.Cols == B.Rows).
//   - Stage 2: i→k→j loops over row-major strides, skipping zero A[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var av float64
	for i := 0; i < rows; i++ {
		rowA, rowR := i*inner, i*cols
		for k := 0; k < inner; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * cols
			for j := 0; j < cols; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix mᵀ; m is never mutated.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		acc, base := 0.0, i*d.c
		for j, xv := range x {
			if xv != 0 {
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// ScaleCols returns out[i,j] = m[i,j]·scale[j].
// Use 1/‖column‖ factors to equilibrate a design matrix before forming XᵀX.
func ScaleCols(m Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(scale, m.Cols()); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out, err := NewDense(d.r, d.c, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	for i := 0; i < d.r; i++ {
		base := i * d.c
		for j := 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] * scale[j]
		}
	}
	out.validateNaNInf = d.validateNaNInf

	return out, nil
}

// ColumnNorms returns the Euclidean norm of every column.
func ColumnNorms(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnNorms, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opColumnNorms, err)
	}
	norms := make([]float64, d.c)
	for j := 0; j < d.c; j++ {
		s := 0.0
		for i := 0; i < d.r; i++ {
			v := d.data[i*d.c+j]
			s += v * v
		}
		norms[j] = math.Sqrt(s)
	}

	return norms, nil
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// and no pivoting.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); allocate L, U; diag(L) = 1.
//   - Stage 2: for i = 0..n−1 build row i of U, guard the pivot, then
//     column i of L.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular when
// |U[i,i]| ≤ eps·max|A| (eps = DefaultEpsilon unless WithEpsilon).
//
// Complexity: Time O(n³), Space O(n²).
//
// Notes:
//   - Without pivoting the factorization is only stable for matrices such as
//     symmetric positive-definite or diagonally dominant ones; XᵀX of a full
//     column rank design matrix qualifies.
func LU(m Matrix, opts ...Option) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := a.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	scale := 0.0
	for _, v := range a.data {
		scale = math.Max(scale, math.Abs(v))
	}
	threshold := o.eps * scale

	var sum, pivot float64
	for i := 0; i < n; i++ {
		baseI := i * n
		for j := i; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if math.Abs(pivot) <= threshold || math.IsNaN(pivot) {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrSingular))
		}

		for j := i + 1; j < n; j++ {
			sum = 0
			baseJ := j * n
			for k := 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// substitute solves L·U·x = b given the factors: forward L·y = b (top-down),
// then backward U·x = y (bottom-up).
func substitute(L, U *Dense, b []float64) []float64 {
	n := L.r
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for k := 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for k := i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / U.data[i*n+i]
	}

	return x
}

// Solve returns x with m·x = b via LU and two triangular solves.
//
// Errors: those of LU, plus ErrDimensionMismatch when len(b) != n.
// Complexity: O(n³).
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	L, U, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return substitute(L, U, b), nil
}

// Inverse computes A⁻¹ column by column from one LU factorization.
//
// Errors: those of LU.
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	L, U, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	for col := 0; col < n; col++ {
		e[col] = 1
		x := substitute(L, U, e)
		e[col] = 0
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
