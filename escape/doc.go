// Package escape decodes C-style backslash escape sequences and encodes
// text for contexts with reserved characters (XML, regular expressions).
package escape
