package escape

import "strings"

// Decode processes ANSI C escape sequences in s. The sequences \\, \a,
// \b, \f, \n, \r, \t and \v decode to their control characters. \x
// followed by hex digits consumes the whole hex run and keeps the low
// byte of its value; \ followed by octal digits consumes up to three of
// them. An unrecognized escape decodes to the character following the
// backslash, so "\c" becomes "c". Scanning stops at a raw NUL byte;
// anything after it is discarded.
func Decode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == 0 {
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i == len(s) {
			break
		}
		switch e := s[i]; e {
		case '\\':
			b.WriteByte('\\')
			i++
		case 'a':
			b.WriteByte('\a')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'v':
			b.WriteByte('\v')
			i++
		case 'x':
			j := i + 1
			var v byte
			for j < len(s) && isHex(s[j]) {
				v = v<<4 | hexVal(s[j])
				j++
			}
			if j == i+1 {
				// \x with no digits: unrecognized, keep the 'x'
				b.WriteByte('x')
				i++
				break
			}
			b.WriteByte(v)
			i = j
		default:
			if isOctal(e) {
				var v byte
				j := i
				for j < len(s) && j < i+3 && isOctal(s[j]) {
					v = v<<3 | (s[j] - '0')
					j++
				}
				b.WriteByte(v)
				i = j
				break
			}
			// unrecognized escape: the following character, literally
			b.WriteByte(e)
			i++
		}
	}
	return b.String()
}

// XML returns s with the XML-special characters &, <, >, " and '
// replaced by their named entity references.
func XML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// GlobToRegex converts glob wildcards to their regular expression
// equivalents, replacing "." with "\.", then "*" with ".*", then "?"
// with ".".
func GlobToRegex(s string) string {
	s = strings.ReplaceAll(s, ".", `\.`)
	s = strings.ReplaceAll(s, "*", ".*")
	s = strings.ReplaceAll(s, "?", ".")
	return s
}

func isHex(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexVal(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
