// SPDX-License-Identifier: MIT

package vowels

// Count returns the number of vowels contained in text.
// The vowel 'y' (either case) is counted only when includeY is true.
//
// Behavior highlights:
//   - Matching is case-insensitive over {a,e,i,o,u}.
//   - Empty text yields 0; there are no error conditions.
//   - Invalid UTF-8 bytes decode to utf8.RuneError and never match.
//
// Example:
//
//	Count("happy", false) // 1
//	Count("happy", true)  // 2
//
// Complexity: O(len(text)) time, O(1) space.
func Count(text string, includeY bool) int {
	if includeY {
		return CountIn(text, WithY)
	}

	return CountIn(text, Default)
}

// CountIn returns the number of runes in text that belong to set.
// Complexity: O(len(text)) time, O(1) space.
func CountIn(text string, set Set) int {
	n := 0
	for _, r := range text {
		if set.Contains(r) {
			n++
		}
	}

	return n
}
