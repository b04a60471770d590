// Package maxmerge combines two mappings, keeping the larger value per key.
//
// The merge is a union of keys: every key present in either input appears in
// the output. For keys present in both, the larger value wins; for keys present
// in only one input, that input's value is kept. Inputs are never mutated and
// the result never aliases them.
//
//	a := map[string]int{"a": 1, "b": 2}
//	b := map[string]int{"b": 100, "c": -1}
//	maxmerge.Merge(a, b) // map[a:1 b:100 c:-1]
//
// Merge accepts any cmp.Ordered value type. MergeFunc takes an explicit
// ordering for value types that are not ordered by the language.
package maxmerge
