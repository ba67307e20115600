// Package token splits raw text into token sequences.
//
// [Split] breaks on every occurrence of a literal separator. [Tokenize]
// breaks on runs of delimiter characters. [Quoted] extends Tokenize so
// that double-quoted spans form a single token. [Matched] extracts
// balanced open/close delimited spans and discards everything outside
// them.
//
// All functions are pure: output depends only on the arguments, and
// every returned token owns its bytes. Malformed input never aborts a
// scan; the quote and matched tokenizers report structural problems as
// a [Diagnostic] list returned alongside the tokens.
package token
