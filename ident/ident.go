// Package ident validates and sanitizes bare identifiers following the
// C/Python convention: a letter or underscore followed by letters,
// digits and underscores.
package ident

import "strings"

// IsValid reports whether s is a valid identifier: non-empty, starting
// with an ASCII letter or underscore, with every following character an
// ASCII letter, digit or underscore.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	if !leading(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !trailing(s[i]) {
			return false
		}
	}
	return true
}

// Sanitize produces a valid identifier from s by replacing every
// character that violates the per-position rule with '_'. An empty s
// sanitizes to "_".
func Sanitize(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(s))
	if leading(s[0]) {
		b.WriteByte(s[0])
	} else {
		b.WriteByte('_')
	}
	for i := 1; i < len(s); i++ {
		if trailing(s[i]) {
			b.WriteByte(s[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func leading(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func trailing(c byte) bool {
	return leading(c) || c >= '0' && c <= '9'
}
