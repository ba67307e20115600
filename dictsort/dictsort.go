// Package dictsort provides a dictionary ordering over strings: a
// near-lexicographic, case-insensitive ordering in which case matters
// only when two strings differ by case alone.
package dictsort

import "sort"

// Less reports whether lhs sorts before rhs in dictionary order.
//
// The primary comparison is case-insensitive, with alphabetic
// characters sorting before the punctuation whose code points fall
// between the uppercase and lowercase ranges (so "_" comes after all
// letters). Only when the two strings are case-insensitively identical
// does case break the tie, uppercase first.
//
// Digit runs are compared character by character, not by numeric
// magnitude: "file10" sorts before "file2". Less is a strict weak
// ordering and is usable directly as a sort predicate.
func Less(lhs, rhs string) bool {
	n := len(lhs)
	if len(rhs) < n {
		n = len(rhs)
	}
	for i := 0; i < n; i++ {
		ca, cb := fold(lhs[i]), fold(rhs[i])
		if ca != cb {
			return ca < cb
		}
	}
	if len(lhs) != len(rhs) {
		return len(lhs) < len(rhs)
	}
	// case-insensitively equal: capitalization is the tiebreak
	return lhs < rhs
}

// fold maps lowercase letters onto their uppercase code points, which
// both removes case and places every letter below the '[' .. '`'
// punctuation range.
func fold(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Sort sorts s in dictionary order.
func Sort(s []string) {
	sort.Slice(s, func(i, j int) bool { return Less(s[i], s[j]) })
}

// IsSorted reports whether s is in dictionary order.
func IsSorted(s []string) bool {
	return sort.SliceIsSorted(s, func(i, j int) bool { return Less(s[i], s[j]) })
}
