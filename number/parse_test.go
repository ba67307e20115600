package number

import (
	"math"
	"strconv"
	"testing"
)

func TestParseInt64(t *testing.T) {
	for _, tc := range []struct {
		in       string
		want     int64
		overflow bool
	}{
		{"0", 0, false},
		{"-0", 0, false},
		{"42", 42, false},
		{"-42", -42, false},
		{"9223372036854775807", math.MaxInt64, false},
		{"-9223372036854775808", math.MinInt64, false},
		{"9223372036854775808", math.MaxInt64, true},
		{"-9223372036854775809", math.MinInt64, true},
		{"99999999999999999999999", math.MaxInt64, true},
		{"-99999999999999999999999", math.MinInt64, true},
	} {
		got, of := ParseInt64(tc.in)
		if got != tc.want || of != tc.overflow {
			t.Errorf("ParseInt64(%q) = %d, %v; want %d, %v",
				tc.in, got, of, tc.want, tc.overflow)
		}
	}
}

func TestParseUint64(t *testing.T) {
	for _, tc := range []struct {
		in       string
		want     uint64
		overflow bool
	}{
		{"0", 0, false},
		{"123456789", 123456789, false},
		{"18446744073709551615", math.MaxUint64, false},
		{"18446744073709551616", math.MaxUint64, true},
		{"184467440737095516150", math.MaxUint64, true},
	} {
		got, of := ParseUint64(tc.in)
		if got != tc.want || of != tc.overflow {
			t.Errorf("ParseUint64(%q) = %d, %v; want %d, %v",
				tc.in, got, of, tc.want, tc.overflow)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	// in-range digit strings agree with the standard base-10 value
	for _, v := range []int64{0, 1, -1, 7, 1000, -123456, math.MaxInt64, math.MinInt64} {
		s := strconv.FormatInt(v, 10)
		got, of := ParseInt64(s)
		if got != v || of {
			t.Errorf("ParseInt64(%q) = %d, %v; want %d, false", s, got, of, v)
		}
	}
	for _, v := range []uint64{0, 1, 255, math.MaxUint64} {
		s := strconv.FormatUint(v, 10)
		got, of := ParseUint64(s)
		if got != v || of {
			t.Errorf("ParseUint64(%q) = %d, %v; want %d, false", s, got, of, v)
		}
	}
}

func TestParseLong(t *testing.T) {
	got, of := ParseLong("123")
	if got != 123 || of {
		t.Errorf("ParseLong(\"123\") = %d, %v", got, of)
	}
	if got, of = ParseLong("-123"); got != -123 || of {
		t.Errorf("ParseLong(\"-123\") = %d, %v", got, of)
	}
	if got, of = ParseLong("99999999999999999999999"); got != math.MaxInt || !of {
		t.Errorf("ParseLong overflow = %d, %v; want %d, true", got, of, math.MaxInt)
	}
	ugot, of := ParseULong("99999999999999999999999")
	if ugot != math.MaxUint || !of {
		t.Errorf("ParseULong overflow = %d, %v; want %d, true", ugot, of, uint(math.MaxUint))
	}
}

func TestParseDouble(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"blah", 0},
		{"1.2foo", 1.2},
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"1.5", 1.5},
		{"-.5", -0.5},
		{".25", 0.25},
		{"1.", 1},
		{"1e3", 1000},
		{"1E3", 1000},
		{"2e-2", 0.02},
		{"-1.5e+2", -150},
		{"1e", 1},      // bare exponent marker is trailing garbage
		{"1e+", 1},     // likewise with a sign
		{"0.1x2", 0.1}, // stops at first non-matching byte
		{"3.14#", 3.14},
	} {
		if got := ParseDouble(tc.in); got != tc.want {
			t.Errorf("ParseDouble(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDoubleNegativeZero(t *testing.T) {
	got := ParseDouble("-")
	if got != 0 || !math.Signbit(got) {
		t.Errorf("ParseDouble(\"-\") = %v (signbit %v); want -0.0", got, math.Signbit(got))
	}
	if got = ParseDouble("-0"); !math.Signbit(got) {
		t.Errorf("ParseDouble(\"-0\") lost the sign")
	}
}

func TestParseDoubleHugeMagnitude(t *testing.T) {
	// beyond float64 range the value saturates, it does not fail
	if got := ParseDouble("1e999"); !math.IsInf(got, 1) {
		t.Errorf("ParseDouble(\"1e999\") = %v; want +Inf", got)
	}
}
