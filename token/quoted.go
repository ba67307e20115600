package token

import "strings"

// Quoted breaks src apart on runs of delimiter characters, treating a
// double-quoted span as part of a single token: a token containing an
// unescaped '"' consumes everything up to the next unescaped '"',
// embedded delimiters included. The quote characters themselves are
// stripped; a quote escaped by a preceding backslash is preserved
// literally in the token instead of opening or closing a span.
//
// An unterminated quote does not abort the scan: the partial token is
// still emitted and a Diagnostic is appended. Using '"' as a delimiter
// is rejected with a Diagnostic and no tokens.
func Quoted(src string, opts Options) ([]string, []Diagnostic) {
	if isDelim('"', opts.Delimiters) {
		return nil, diag(nil, 0, ErrQuoteIsDelimiter)
	}
	var (
		toks  []string
		diags []Diagnostic
		b     strings.Builder
	)
	i := 0
	n := len(src)
	for i < n {
		// eat leading delimiters
		for i < n && isDelim(src[i], opts.Delimiters) {
			i++
		}
		if i == n {
			break
		}
		b.Reset()
		quoted := false
		quoteStart := 0
		for i < n {
			c := src[i]
			if !quoted && isDelim(c, opts.Delimiters) {
				break
			}
			switch c {
			case '\\':
				if i+1 < n && src[i+1] == '"' {
					b.WriteByte('"')
					i += 2
					continue
				}
				b.WriteByte(c)
			case '"':
				if quoted {
					quoted = false
				} else {
					quoted = true
					quoteStart = i
				}
			default:
				b.WriteByte(c)
			}
			i++
		}
		if quoted {
			diags = diag(diags, quoteStart, ErrUnterminatedQuote)
		}
		toks = append(toks, b.String())
	}
	return toks, diags
}
