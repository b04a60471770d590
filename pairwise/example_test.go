package pairwise_test

import (
	"fmt"

	"github.com/katalvlaran/cidummy/matrix"
	"github.com/katalvlaran/cidummy/pairwise"
)

// ExampleDists computes distances between two small point sets.
func ExampleDists() {
	x, _ := matrix.NewFromRows([][]float64{{1, 0}, {1, 1}})
	y, _ := matrix.NewFromRows([][]float64{{1, 0}, {0, 1}})

	d, err := pairwise.Dists(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range d.Rows2D() {
		fmt.Printf("%.4f\n", row)
	}
	// Output:
	// [0.0000 1.4142]
	// [1.0000 1.0000]
}

// ExampleDists_invalidShape shows the single failure mode.
func ExampleDists_invalidShape() {
	x, _ := matrix.NewDense(2, 3)
	y, _ := matrix.NewDense(2, 2)

	_, err := pairwise.Dists(x, y)
	fmt.Println(err)
	// Output:
	// Dists: pairwise: invalid shape: ValidateSameCols: 3 vs 2: matrix: dimension mismatch
}

// ExampleSquaredDists ranks candidate sites by squared distance.
func ExampleSquaredDists() {
	sites, _ := matrix.NewFromRows([][]float64{{0, 0}, {10, 0}, {3, 4}})
	query, _ := matrix.NewFromRows([][]float64{{2, 2}})

	sq, _ := pairwise.SquaredDists(query, sites)
	best, bestD := -1, 0.0
	sq.Do(func(_, j int, v float64) bool {
		if best < 0 || v < bestD {
			best, bestD = j, v
		}

		return true
	})
	fmt.Printf("nearest site=%d squared=%.0f\n", best, bestD)
	// Output:
	// nearest site=2 squared=5
}
