// Package pairwise computes Euclidean distance matrices between two point sets.
//
// 🚀 What is computed?
//
//	For x with M rows and y with N rows, both in ℝᴰ, Dists returns the M×N
//	matrix whose entry (i,j) is ‖xᵢ − yⱼ‖₂.
//
// ✨ How:
//
//	Instead of an M·N·D subtraction loop, the squared distance is expanded as
//
//	  ‖x − y‖² = ‖x‖² − 2·x·yᵀ + ‖y‖²
//
//	so the heavy part is a single matrix product (gonum BLAS) plus two norm
//	vectors broadcast over rows and columns (vek kernels). The asymptotic cost
//	is the same; the constant factor and cache behavior are much better.
//
// ⚠️ Numerical care:
//
//	For near-identical points the expansion subtracts two large, almost equal
//	numbers, and cancellation can leave a tiny negative squared distance.
//	Every entry is clamped at 0 before the square root, so coincident points
//	give exactly 0 instead of NaN. There is no upper clamp.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cidummy/pairwise"
//
//	d, err := pairwise.DistsRows(
//	    [][]float64{{1, 0}, {1, 1}},
//	    [][]float64{{1, 0}, {0, 1}},
//	) // [[0 1.4142…] [1 1]]
//
// Errors:
//
//   - ErrInvalidShape when the feature dimensions of x and y differ. This is
//     the only failure mode; non-finite coordinates propagate by IEEE rules.
//
// Performance:
//
//   - Time:   O(M·N·D)
//   - Memory: O(M·N + M + N)
package pairwise
