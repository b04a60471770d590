// SPDX-License-Identifier: MIT

package pairwise

import "errors"

// ErrInvalidShape indicates that x and y do not share a feature dimension, or
// that slice-of-rows input is ragged. Errors returned for a dimension mismatch
// also match matrix.ErrDimensionMismatch.
var ErrInvalidShape = errors.New("pairwise: invalid shape")

// Operation tags for error wrapping.
const (
	opDists        = "Dists"
	opSquaredDists = "SquaredDists"
	opDistsRows    = "DistsRows"
	opDistsScalar  = "DistsScalar"
)
