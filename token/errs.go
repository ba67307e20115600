package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrUnbalanced        = errors.New("unbalanced delimiter")
	ErrSameDelimiters    = errors.New("open and close delimiters are equal")
	ErrEscapeIsDelimiter = errors.New("escape character is a delimiter")
	ErrQuoteIsDelimiter  = errors.New("quote character is a delimiter")
)

// Diagnostic reports a structural problem found during a scan. Scans do
// not abort on such problems; they degrade and append a Diagnostic.
// Offset is the byte offset in the source where the problem begins.
type Diagnostic struct {
	Offset int
	Err    error
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s at offset %d", d.Err.Error(), d.Offset)
}

func diag(ds []Diagnostic, off int, err error) []Diagnostic {
	return append(ds, Diagnostic{Offset: off, Err: err})
}
