// Package cidummy is a small toolbox of pure, stateless helpers: counting
// vowels, merging score maps by maximum, and computing pairwise Euclidean
// distances between point sets.
//
// 🚀 What is cidummy?
//
//	A compact library that brings together:
//		• Text: vowel counting with an optional 'y' and custom vowel sets
//		• Maps: key-wise max-merge of two mappings, generic over key and value
//		• Geometry: M×N distance matrices via ‖x‖² − 2·x·yᵀ + ‖y‖²
//
// ✨ Why choose cidummy?
//
//   - Small API – one call per task, explicit errors, no hidden state
//   - Numerically careful – squared distances are clamped at 0 before sqrt
//   - Fast kernels – gonum BLAS for x·yᵀ, vek SIMD kernels for the rest
//
// Everything is organized under four subpackages:
//
//	vowels/   — Count, CountIn and vowel Set values
//	maxmerge/ — Merge (cmp.Ordered values) and MergeFunc (caller ordering)
//	matrix/   — row-major Dense point matrices, validators, Mul/MulT/AllClose
//	pairwise/ — Dists, SquaredDists, DistsRows and the scalar reference
//
// Quick example:
//
//	x := [[1,0],[1,1]]   y := [[1,0],[0,1]]
//	Dists(x, y) ≈ [[0, 1.4142],
//	               [1, 1     ]]
//
// See examples/ for a runnable program tying the three tasks together.
//
//	go get github.com/katalvlaran/cidummy
package cidummy
