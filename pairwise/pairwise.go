// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"

	"github.com/katalvlaran/cidummy/matrix"
	"github.com/viterin/vek"
)

// Dists returns the M×N matrix of Euclidean distances between the rows of x
// (M×D) and the rows of y (N×D).
//
// Implementation:
//   - Stage 1: validate non-nil inputs and x.Cols() == y.Cols().
//   - Stage 2: squared distances via the norm expansion, clamped at 0.
//   - Stage 3: elementwise square root.
//
// Behavior highlights:
//   - M == 0 or N == 0 yields an empty M×N result; D == 0 yields zeros.
//   - Inputs are never mutated. The result does not validate NaN/Inf, so
//     non-finite coordinates propagate.
//
// Errors:
//   - ErrInvalidShape (also matrix.ErrDimensionMismatch) on feature mismatch.
//   - matrix.ErrNilMatrix for nil input.
//
// Complexity: O(M·N·D) time, O(M·N) space.
func Dists(x, y matrix.Matrix) (*matrix.Dense, error) {
	out, err := squared(x, y, opDists)
	if err != nil {
		return nil, err
	}
	if out.Cols() == 0 {
		return out, nil
	}
	for i := 0; i < out.Rows(); i++ {
		vek.Sqrt_Inplace(out.RawRow(i))
	}

	return out, nil
}

// SquaredDists returns the clamped squared distances ‖xᵢ − yⱼ‖², i.e. Dists
// before the square root. Ranking by squared distance gives the same order
// and saves M·N square roots.
//
// Errors and edge cases are those of Dists.
func SquaredDists(x, y matrix.Matrix) (*matrix.Dense, error) {
	return squared(x, y, opSquaredDists)
}

// squared computes max(‖x‖² − 2·x·yᵀ + ‖y‖², 0) into a fresh Dense.
func squared(x, y matrix.Matrix, tag string) (*matrix.Dense, error) {
	xd, yd, err := validate(x, y, tag)
	if err != nil {
		return nil, err
	}

	// G[i,j] = ⟨xᵢ, yⱼ⟩ in one BLAS call.
	out, err := matrix.MulT(xd, yd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	m, n := out.Shape()
	if m == 0 || n == 0 {
		return out, nil
	}

	xNorms, yNorms := sqNorms(xd), sqNorms(yd)
	var i, j int
	var row []float64
	for i = 0; i < m; i++ {
		row = out.RawRow(i)
		vek.MulNumber_Inplace(row, -2)        // −2·⟨xᵢ, yⱼ⟩
		vek.Add_Inplace(row, yNorms)          // + ‖yⱼ‖² across columns
		vek.AddNumber_Inplace(row, xNorms[i]) // + ‖xᵢ‖² down rows
		for j = range row {
			if row[j] < 0 { // cancellation residue; NaN fails the test and passes through
				row[j] = 0
			}
		}
	}

	return out, nil
}

// validate checks nil-ness and feature dimensions and returns Dense views of
// both inputs.
func validate(x, y matrix.Matrix, tag string) (*matrix.Dense, *matrix.Dense, error) {
	xd, err := matrix.AsDense(x)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: x: %w", tag, err)
	}
	yd, err := matrix.AsDense(y)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: y: %w", tag, err)
	}
	if err = matrix.ValidateSameCols(xd, yd); err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", tag, ErrInvalidShape, err)
	}

	return xd, yd, nil
}

// sqNorms returns ‖rowᵢ‖² for every row of m.
func sqNorms(m *matrix.Dense) []float64 {
	out := make([]float64, m.Rows())
	if m.Cols() == 0 {
		return out
	}
	var row []float64
	for i := range out {
		row = m.RawRow(i)
		out[i] = vek.Dot(row, row)
	}

	return out
}
