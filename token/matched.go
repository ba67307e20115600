package token

// MatchedOptions configures Matched. Open and Close must differ. A zero
// Escape disables escape handling.
type MatchedOptions struct {
	Open   byte
	Close  byte
	Escape byte
}

// Matched extracts the spans of src enclosed by balanced Open/Close
// delimiter pairs. A token is the text between a top-level Open and its
// matching Close, with the pair itself stripped and any nested
// delimiters retained verbatim. Text outside every span is discarded.
// When an escape character is configured, it makes the following
// delimiter character literal content instead of a nesting event; the
// escape byte itself is retained in the token.
//
// For example
//
//	Matched("{a} string {to {be} split}", MatchedOptions{Open: '{', Close: '}'})
//
// yields ["a", "to {be} split"].
//
// A span still open at end of input is dropped, not emitted, and a
// Diagnostic is appended. Equal delimiters, or an escape equal to a
// delimiter, are rejected with a Diagnostic and no tokens.
func Matched(src string, opts MatchedOptions) ([]string, []Diagnostic) {
	if opts.Open == opts.Close {
		return nil, diag(nil, 0, ErrSameDelimiters)
	}
	if opts.Escape != 0 && (opts.Escape == opts.Open || opts.Escape == opts.Close) {
		return nil, diag(nil, 0, ErrEscapeIsDelimiter)
	}
	var (
		toks  []string
		diags []Diagnostic
	)
	depth := 0
	start := 0
	openAt := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		if opts.Escape != 0 && c == opts.Escape && i+1 < len(src) &&
			(src[i+1] == opts.Open || src[i+1] == opts.Close) {
			i++
			continue
		}
		switch c {
		case opts.Open:
			depth++
			if depth == 1 {
				start = i + 1
				openAt = i
			}
		case opts.Close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				toks = append(toks, src[start:i])
			}
		}
	}
	if depth > 0 {
		// unterminated span: dropped, unlike Quoted's partial token
		diags = diag(diags, openAt, ErrUnbalanced)
	}
	return toks, diags
}
