// SPDX-License-Identifier: MIT

package maxmerge

import "cmp"

// Merge returns a new map holding every key of a and b. Where a key is present
// in both, the value from b replaces the one from a only if it is strictly
// greater, so ties keep a's value.
//
// Behavior highlights:
//   - keys(out) == keys(a) ∪ keys(b); out[k] >= a[k] and out[k] >= b[k].
//   - Nil inputs are treated as empty; the result is always non-nil.
//   - Float NaN in b never replaces a value from a (NaN > x is false).
//
// Complexity: O(len(a)+len(b)) time and space.
func Merge[M ~map[K]V, K comparable, V cmp.Ordered](a, b M) M {
	merged := make(M, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		if cur, ok := merged[k]; !ok || v > cur {
			merged[k] = v
		}
	}

	return merged
}

// MergeFunc is Merge with a caller-supplied ordering. The value from b replaces
// the one from a when less(a[k], b[k]) reports true. less must describe a
// strict weak ordering; MergeFunc does not check it.
//
// Complexity: O(len(a)+len(b)) calls to less at most.
func MergeFunc[M ~map[K]V, K comparable, V any](a, b M, less func(x, y V) bool) M {
	merged := make(M, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		if cur, ok := merged[k]; !ok || less(cur, v) {
			merged[k] = v
		}
	}

	return merged
}
