package token

import "strings"

// DefaultDelimiters is the delimiter set used by DefaultOptions.
const DefaultDelimiters = " \t\n"

// Options configures the delimiter-based tokenizers.
type Options struct {
	// Delimiters is the set of characters, any one of which separates
	// tokens. Runs of delimiters collapse; no empty tokens result.
	Delimiters string
}

// DefaultOptions returns Options splitting on space, tab and newline.
func DefaultOptions() Options {
	return Options{Delimiters: DefaultDelimiters}
}

// Split breaks src apart on every occurrence of the literal separator
// sep, preserving empty tokens between adjacent separators. An empty
// src produces no tokens; an empty sep produces src as the only token.
func Split(src, sep string) []string {
	if src == "" {
		return nil
	}
	if sep == "" {
		return []string{src}
	}
	return strings.Split(src, sep)
}

// Tokenize breaks src apart on runs of delimiter characters. Empty
// tokens never result.
func Tokenize(src string, opts Options) []string {
	var toks []string
	start := -1
	for i := 0; i < len(src); i++ {
		if isDelim(src[i], opts.Delimiters) {
			if start >= 0 {
				toks = append(toks, src[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, src[start:])
	}
	return toks
}

// TokenizeToSet is Tokenize with the result deduplicated into a set.
func TokenizeToSet(src string, opts Options) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokenize(src, opts) {
		set[tok] = struct{}{}
	}
	return set
}

func isDelim(c byte, delims string) bool {
	return strings.IndexByte(delims, c) >= 0
}
