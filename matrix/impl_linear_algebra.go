// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels over any Matrix
// implementation: transpose, matrix product a·b and the Gram-style product
// a·bᵀ. All functions validate fail-fast and return wrapped sentinels.
//
// Products are delegated to gonum's mat.Dense, which runs the BLAS dgemm
// kernel from gonum.org/v1/gonum/blas/gonum. *Dense operands are wrapped in
// place (no copy); other Matrix implementations are copied once.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulT      = "MulT"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
	opEqual     = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asGonum exposes m as a gonum matrix. For *Dense the flat buffer is shared;
// any other implementation is copied through At. m must have r,c > 0, since
// gonum rejects empty shapes.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(r, c, d.data), nil
	}
	buf := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// inheritPolicy returns the Option set that reproduces a's numeric policy.
func inheritPolicy(a Matrix) []Option {
	if d, ok := a.(*Dense); ok && d.validateNaNInf {
		return []Option{WithValidateNaNInf()}
	}

	return nil
}

// product computes out = a·op(b) where op is identity or transpose.
// Shapes are validated by the caller. Empty outputs and empty inner
// dimensions short-circuit before gonum (which panics on zero sizes).
// opts configure the result Dense.
func product(a, b Matrix, transB bool, tag string, opts []Option) (*Dense, error) {
	rows, inner := a.Rows(), a.Cols()
	cols := b.Cols()
	if transB {
		cols = b.Rows()
	}
	res, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if rows == 0 || cols == 0 || inner == 0 {
		return res, nil // empty result, or a sum over no terms: all zeros
	}

	ga, err := asGonum(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	gb, err := asGonum(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := mat.NewDense(rows, cols, res.data) // writes land in res.data
	if transB {
		out.Mul(ga, gb.T())
	} else {
		out.Mul(ga, gb)
	}
	if res.validateNaNInf {
		if idx := firstNonFinite(res.data); idx >= 0 {
			return nil, matrixErrorf(tag, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
		}
	}

	return res, nil
}

// Mul returns the matrix product a·b as a new Dense.
// MAIN DESCRIPTION:
//   - Standard product of an (r×n) and an (n×c) matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate Dense(r, c) configured by opts.
//   - Stage 3: gonum mat.Dense.Mul writing straight into the result buffer.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//   - ErrNaNInf when opts enable validation and the product is non-finite.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return product(a, b, false, opMul, opts)
}

// MulT returns a·bᵀ without materialising bᵀ. For two point sets a (M×D) and
// b (N×D) the result is the M×N matrix of inner products ⟨aᵢ, bⱼ⟩.
// opts configure the result Dense, as in Mul.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols() != b.Cols()).
//
// Complexity:
//   - Time O(M*N*D), Space O(M*N).
func MulT(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}
	if err := ValidateSameCols(a, b); err != nil {
		return nil, matrixErrorf(opMulT, err)
	}

	return product(a, b, true, opMulT, opts)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated. Fast-path copies *Dense data via
// flat indexing; fallback uses At.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, inheritPolicy(m)...) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}
