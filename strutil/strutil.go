// Package strutil holds small string helpers shared by the tokenizers'
// callers. All semantics are byte-wise over single-byte character data.
package strutil

import "strings"

// CommonPrefix returns the longest prefix common to a and b, or "" when
// they share none.
func CommonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// Capitalize returns s with only its first character capitalized,
// emulating Python's str.capitalize.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Replace returns s with every occurrence of from replaced by to. An
// empty from leaves s unchanged; a to containing from is handled
// correctly (already-replaced text is never rescanned).
func Replace(s, from, to string) string {
	if from == "" {
		return s
	}
	return strings.ReplaceAll(s, from, to)
}
