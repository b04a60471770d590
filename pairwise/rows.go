// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"

	"github.com/katalvlaran/cidummy/matrix"
)

// DistsRows is Dists for slice-of-rows input and output. out[i][j] is the
// distance between x[i] and y[j].
//
// An empty x or y has no feature dimension to check; the result then has
// len(x) rows of len(y) columns and no error. Ragged rows return
// ErrInvalidShape (also matrix.ErrBadShape).
func DistsRows(x, y [][]float64) ([][]float64, error) {
	if len(x) == 0 || len(y) == 0 {
		out := make([][]float64, len(x))
		for i := range out {
			out[i] = make([]float64, len(y))
		}

		return out, nil
	}

	xm, err := matrix.NewFromRows(x)
	if err != nil {
		return nil, fmt.Errorf("%s: x: %w: %w", opDistsRows, ErrInvalidShape, err)
	}
	ym, err := matrix.NewFromRows(y)
	if err != nil {
		return nil, fmt.Errorf("%s: y: %w: %w", opDistsRows, ErrInvalidShape, err)
	}
	d, err := Dists(xm, ym)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDistsRows, err)
	}

	return d.Rows2D(), nil
}
