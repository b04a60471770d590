// SPDX-License-Identifier: MIT

package pairwise

import (
	"math"

	"github.com/katalvlaran/cidummy/matrix"
)

// DistsScalar is the direct O(M·N·D) implementation: for every pair it sums
// the squared coordinate differences and takes the root. It has no
// cancellation issue and serves as the reference for Dists in tests and
// benchmarks. Validation and edge cases match Dists.
func DistsScalar(x, y matrix.Matrix) (*matrix.Dense, error) {
	xd, yd, err := validate(x, y, opDistsScalar)
	if err != nil {
		return nil, err
	}
	m, n, d := xd.Rows(), yd.Rows(), xd.Cols()
	out, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}

	var i, j, k int
	var xi, yj, dst []float64
	var sum, diff float64
	for i = 0; i < m; i++ {
		xi, dst = xd.RawRow(i), out.RawRow(i)
		for j = 0; j < n; j++ {
			yj = yd.RawRow(j)
			sum = 0
			for k = 0; k < d; k++ {
				diff = xi[k] - yj[k]
				sum += diff * diff
			}
			dst[j] = math.Sqrt(sum)
		}
	}

	return out, nil
}
