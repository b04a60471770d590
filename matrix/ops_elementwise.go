// SPDX-License-Identifier: MIT

package matrix

import "math"

// valueAt reads (i,j) from a *Dense directly or through At otherwise.
func valueAt(m Matrix, i, j int) float64 {
	if d, ok := m.(*Dense); ok {
		return d.data[i*d.c+j]
	}
	v, _ := m.At(i, j) // indices are in range by construction

	return v
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - NaN matches NaN, and equal infinities match; any other pairing with a
//     non-finite value fails.
//
// Complexity: O(r*c) time, O(1) space. Deterministic i→j order, early exit.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var i, j int
	var av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			av, bv = valueAt(a, i, j), valueAt(b, i, j)
			if !isClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// isClose applies the AllClose relation to a single pair of values.
func isClose(a, b, rtol, atol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// Equal reports whether a and b have the same shape and equal values
// (NaN compares equal to NaN here).
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	ok, _ := AllClose(a, b, 0, 0)

	return ok, nil
}
