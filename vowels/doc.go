// Package vowels counts vowel characters in text.
//
// 🚀 What is counted?
//
//	The default vowel set is {a, e, i, o, u}, matched case-insensitively.
//	The letter 'y' is optional and joins the set only when asked for:
//	  • Count("happy", false) == 1
//	  • Count("happy", true)  == 2
//
// ✨ Key features:
//   - single pass over the runes of the input, no allocations
//   - any string is valid input; non-letters simply never match
//   - custom sets via NewSet / CountIn for callers that need other letters
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cidummy/vowels"
//
//	n := vowels.Count("aA bB yY", false) // 2
//	m := vowels.Count("aA bB yY", true)  // 4
//
// Performance:
//
//   - Time:   O(len(text))
//   - Memory: O(1)
package vowels
