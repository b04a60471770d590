// SPDX-License-Identifier: MIT

package vowels

// asciiCaseBit is the bit that separates upper- and lower-case ASCII letters.
const asciiCaseBit = 'a' - 'A'

// Character literals for the built-in sets.
const (
	defaultChars = "aeiou"
	yChars       = "y"
)

// Set is an immutable set of ASCII characters treated as vowels.
//
// The zero value is the empty set. A Set is a plain value (two machine words),
// so it is safe to copy and share between goroutines.
type Set struct {
	bits [2]uint64 // bit r%64 of bits[r/64] marks rune r (r < 128)
}

var (
	// Default is {a,e,i,o,u} in both cases.
	Default = NewSet(defaultChars)

	// WithY is Default extended with {y,Y}.
	WithY = NewSet(defaultChars + yChars)
)

// NewSet builds a Set from chars. ASCII letters are folded so that adding
// either case adds both. Runes outside ASCII are ignored.
// Complexity: O(len(chars)).
func NewSet(chars string) Set {
	var s Set
	for _, r := range chars {
		s = s.add(r)
	}

	return s
}

// add returns s with r (and its other ASCII case, if a letter) included.
func (s Set) add(r rune) Set {
	if r < 0 || r >= 128 {
		return s
	}
	s.bits[r>>6] |= 1 << (uint(r) & 63)
	if lower := r | asciiCaseBit; lower >= 'a' && lower <= 'z' {
		s.bits[lower>>6] |= 1 << (uint(lower) & 63)
		upper := lower &^ asciiCaseBit
		s.bits[upper>>6] |= 1 << (uint(upper) & 63)
	}

	return s
}

// Union returns a new Set containing the members of s and o.
func (s Set) Union(o Set) Set {
	return Set{bits: [2]uint64{s.bits[0] | o.bits[0], s.bits[1] | o.bits[1]}}
}

// Contains reports whether r belongs to s.
// Complexity: O(1).
func (s Set) Contains(r rune) bool {
	if r < 0 || r >= 128 {
		return false
	}

	return s.bits[r>>6]&(1<<(uint(r)&63)) != 0
}
