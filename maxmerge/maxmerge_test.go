// SPDX-License-Identifier: MIT

package maxmerge_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/cidummy/maxmerge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMerge_Documented checks the documented example and empty inputs.
func TestMerge_Documented(t *testing.T) {
	got := maxmerge.Merge(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 20, "c": -1})
	assert.Equal(t, map[string]int{"a": 1, "b": 20, "c": -1}, got)

	// empty first input
	b := map[string]float64{"a": 10.2, "f": -1.0}
	assert.Equal(t, b, maxmerge.Merge(map[string]float64{}, b))

	// empty second input
	a := map[string]float64{"a": 10.2, "f": -1.0}
	assert.Equal(t, a, maxmerge.Merge(a, map[string]float64{}))

	// both empty
	assert.Equal(t, map[string]float64{}, maxmerge.Merge(map[string]float64{}, map[string]float64{}))
}

// TestMerge_Table covers the parameterised cases.
func TestMerge_Table(t *testing.T) {
	cases := []struct {
		name string
		a, b map[string]int
		want map[string]int
	}{
		{"overlap", map[string]int{"a": 1, "b": 2}, map[string]int{"b": 20, "c": -1}, map[string]int{"a": 1, "b": 20, "c": -1}},
		{"emptyA", map[string]int{}, map[string]int{"b": 20, "c": -1}, map[string]int{"b": 20, "c": -1}},
		{"emptyB", map[string]int{"a": 1, "b": 2}, map[string]int{}, map[string]int{"a": 1, "b": 2}},
		{"bothEmpty", map[string]int{}, map[string]int{}, map[string]int{}},
		{"aWins", map[string]int{"k": 9}, map[string]int{"k": -9}, map[string]int{"k": 9}},
		{"tie", map[string]int{"k": 3}, map[string]int{"k": 3}, map[string]int{"k": 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, maxmerge.Merge(tc.a, tc.b))
		})
	}
}

// TestMerge_NilInputs verifies nil maps behave as empty and yield a non-nil map.
func TestMerge_NilInputs(t *testing.T) {
	got := maxmerge.Merge[map[int]int](nil, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	var none map[int]int
	got = maxmerge.Merge(none, map[int]int{1: 1})
	assert.Equal(t, map[int]int{1: 1}, got)
}

// TestMerge_NoMutationNoAlias ensures inputs are untouched and the result is independent.
func TestMerge_NoMutationNoAlias(t *testing.T) {
	a := map[string]int{"a": 1, "b": 2}
	b := map[string]int{"b": 20, "c": -1}

	got := maxmerge.Merge(a, b)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, a, "a must not be mutated")
	assert.Equal(t, map[string]int{"b": 20, "c": -1}, b, "b must not be mutated")

	got["z"] = 100
	assert.NotContains(t, a, "z")
	assert.NotContains(t, b, "z")
}

// TestMerge_NamedMapType keeps the caller's named map type.
func TestMerge_NamedMapType(t *testing.T) {
	type scores map[string]float64
	got := maxmerge.Merge(scores{"x": 1}, scores{"x": 2})
	assert.IsType(t, scores{}, got)
	assert.Equal(t, scores{"x": 2}, got)
}

// TestMerge_NaN documents the strict-greater rule for float NaN.
func TestMerge_NaN(t *testing.T) {
	got := maxmerge.Merge(map[string]float64{"k": 1}, map[string]float64{"k": math.NaN()})
	assert.Equal(t, 1.0, got["k"], "NaN from b never replaces a")

	got = maxmerge.Merge(map[string]float64{"k": math.NaN()}, map[string]float64{"k": 1})
	assert.True(t, math.IsNaN(got["k"]), "nothing compares greater than NaN")
}

// TestMergeFunc_CustomOrder merges values that are not cmp.Ordered.
func TestMergeFunc_CustomOrder(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := map[string]time.Time{"build": t0, "test": t0.Add(time.Hour)}
	b := map[string]time.Time{"build": t0.Add(2 * time.Hour), "deploy": t0}

	got := maxmerge.MergeFunc(a, b, func(x, y time.Time) bool { return x.Before(y) })
	assert.Equal(t, map[string]time.Time{
		"build":  t0.Add(2 * time.Hour),
		"test":   t0.Add(time.Hour),
		"deploy": t0,
	}, got)
}

// TestMergeFunc_NaNAware shows how a NaN-aware ordering lets b replace a NaN.
func TestMergeFunc_NaNAware(t *testing.T) {
	less := func(x, y float64) bool { return math.IsNaN(x) && !math.IsNaN(y) || x < y }
	got := maxmerge.MergeFunc(map[int]float64{1: math.NaN()}, map[int]float64{1: -5}, less)
	assert.Equal(t, -5.0, got[1])
}
