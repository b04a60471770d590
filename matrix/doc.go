// Package matrix offers a small row-major Dense container for point sets and
// the linear-algebra kernels the distance code needs.
//
// The matrix package provides:
//
//   - Dense, a flat row-major buffer with safe At/Set accessors that return
//     sentinel errors instead of panicking.
//   - Constructors from shapes, flat data, or slice-of-rows input; zero-sized
//     shapes (0×D, M×0) are legal so empty point sets need no special casing.
//   - Transpose, Mul and MulT (a·bᵀ); products run on gonum's BLAS kernels.
//   - AllClose / Equal for tolerance-based and exact comparisons.
//
// Numeric policy is explicit and per-instance: by default NaN and ±Inf are
// stored like any other value and propagate through the kernels by IEEE rules.
// WithValidateNaNInf turns on rejection at ingestion and Set.
//
// See example_test.go for usage patterns.
package matrix
