// Package paths concatenates and decomposes '/'-separated path-like
// strings, such as file paths or scene scope names.
package paths

import (
	"strings"

	"github.com/scenepipe/stringkit/token"
)

var slashOpts = token.Options{Delimiters: "/"}

// Join concatenates two path-like strings, resolving leading ".."
// components of suffix against the end of prefix.
//
//	Join("foo/bar", "jive")    == "foo/bar/jive"
//	Join("foo/bar", "../jive") == "foo/jive"
//
// Each leading ".." consumes one trailing component of prefix. Once the
// prefix is exhausted, remaining ".." components are kept literally in
// the result; there is no error and no clamping to a root.
func Join(prefix, suffix string) string {
	pre := token.Tokenize(prefix, slashOpts)
	suf := token.Tokenize(suffix, slashOpts)
	i := 0
	for i < len(suf) && suf[i] == ".." && len(pre) > 0 {
		pre = pre[:len(pre)-1]
		i++
	}
	return strings.Join(append(pre, suf[i:]...), "/")
}

// Base returns the final component of p, the part after the last '/'.
// If p contains no slash, Base returns p.
func Base(p string) string {
	return p[strings.LastIndexByte(p, '/')+1:]
}

// DirName returns the complement of Base, including the trailing '/',
// so that DirName(p)+Base(p) == p as long as p does not end in multiple
// adjacent slashes. If p contains no slash, DirName returns "".
func DirName(p string) string {
	return p[:strings.LastIndexByte(p, '/')+1]
}

// Suffix returns the part of name after the final occurrence of delim,
// so Suffix("abc.def", '.') is "def". If delim does not occur, Suffix
// returns "".
func Suffix(name string, delim byte) string {
	i := strings.LastIndexByte(name, delim)
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// BeforeSuffix returns the part of name before the final occurrence of
// delim, so BeforeSuffix("abc.def", '.') is "abc". If delim does not
// occur, BeforeSuffix returns name.
func BeforeSuffix(name string, delim byte) string {
	i := strings.LastIndexByte(name, delim)
	if i < 0 {
		return name
	}
	return name[:i]
}
