// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep data finite unless a test targets the numeric policy explicitly.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cidummy/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the generic (non-*Dense) code paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromData(r, c, vals)
	require.NoError(t, err, "NewFromData(%d,%d)", r, c)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Use identical seeds across fast vs fallback to isolate path differences.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1 // U(-1,1)
	}
	m, err := matrix.NewFromData(r, c, data)
	if err != nil {
		t.Fatalf("NewFromData(%d,%d): %v", r, c, err)
	}

	return m
}

// naiveMul is the textbook i→j→k triple loop used as an oracle.
func naiveMul(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for j := range out[i] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// requireAllClose asserts AllClose(got, want) with a dump on failure.
func requireAllClose(t *testing.T, got, want matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "got:\n%v\nwant:\n%v", got, want)
}
