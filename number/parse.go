package number

import (
	"math"
	"strconv"
)

// accumulate folds decimal digits into a magnitude, clamping at limit.
// The bool result reports whether the limit was exceeded. Input bytes
// outside '0'..'9' produce unspecified values but never a panic.
func accumulate(s string, limit uint64) (uint64, bool) {
	var v uint64
	for i := 0; i < len(s); i++ {
		d := uint64(s[i] - '0')
		if v > (limit-d)/10 {
			return limit, true
		}
		v = v*10 + d
	}
	return v, false
}

func parseSigned(s string, maxMag, minMag uint64) (uint64, bool, bool) {
	if len(s) == 0 {
		return 0, false, false
	}
	if s[0] == '-' {
		mag, of := accumulate(s[1:], minMag)
		return mag, true, of
	}
	mag, of := accumulate(s, maxMag)
	return mag, false, of
}

// ParseInt64 converts a sequence of decimal digits, optionally preceded
// by '-', to an int64. The caller is responsible for ensuring s matches
// -?[0-9]+; other input yields an unspecified value. On magnitude
// overflow the returned value is math.MinInt64 or math.MaxInt64,
// whichever is closer to the true value, and the second result is true.
func ParseInt64(s string) (int64, bool) {
	mag, neg, of := parseSigned(s, math.MaxInt64, 1<<63)
	if neg {
		return -int64(mag), of
	}
	return int64(mag), of
}

// ParseUint64 converts a sequence of decimal digits to a uint64. The
// caller is responsible for ensuring s matches [0-9]+. On overflow the
// result is math.MaxUint64 and the second result is true.
func ParseUint64(s string) (uint64, bool) {
	return accumulate(s, math.MaxUint64)
}

// ParseLong is ParseInt64 for the platform word size, for callers whose
// target is a plain int.
func ParseLong(s string) (int, bool) {
	mag, neg, of := parseSigned(s, math.MaxInt, uint64(math.MaxInt)+1)
	if neg {
		return -int(mag), of
	}
	return int(mag), of
}

// ParseULong is ParseUint64 for the platform word size.
func ParseULong(s string) (uint, bool) {
	v, of := accumulate(s, math.MaxUint)
	return uint(v), of
}

// ParseDouble converts the longest prefix of s matching
//
//	(-?[0-9]+(\.[0-9]*)?|-?\.[0-9]+)([eE][-+]?[0-9]+)?
//
// to a float64. It never fails: parsing stops at the first byte that
// does not extend a match and anything after it is ignored.
//
//	ParseDouble("")       == 0.0
//	ParseDouble("blah")   == 0.0
//	ParseDouble("-")      == -0.0
//	ParseDouble("1.2foo") == 1.2
func ParseDouble(s string) float64 {
	end := matchDouble(s)
	if end == 0 {
		return 0
	}
	if end == 1 && s[0] == '-' {
		return math.Copysign(0, -1)
	}
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}

// matchDouble returns the length of the longest prefix of s matching
// the ParseDouble grammar, except that a lone leading '-' counts as a
// match of length 1 (it parses as negative zero).
func matchDouble(s string) int {
	i := 0
	n := len(s)
	if i < n && s[i] == '-' {
		i++
	}
	intDigits := digits(s[i:])
	i += intDigits
	fracDigits := 0
	hasDot := false
	if i < n && s[i] == '.' {
		hasDot = true
		fracDigits = digits(s[i+1:])
		i += 1 + fracDigits
	}
	if intDigits == 0 {
		if !hasDot || fracDigits == 0 {
			// no mantissa; a lone '-' still yields -0.0
			if len(s) > 0 && s[0] == '-' {
				return 1
			}
			return 0
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := digits(s[j:]); d > 0 {
			i = j + d
		}
	}
	return i
}

func digits(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}
