// Package convert provides text conversion for concrete types through
// the TextConvertible interface and a fixed type switch, without
// reflection.
package convert

import "strconv"

// TextConvertible is implemented by types that define their own text
// form. Stringify dispatches to it before any built-in case.
type TextConvertible interface {
	Text() string
	SetText(s string) error
}

// Stringify converts v to its text form. It handles TextConvertible,
// bool, string, the signed and unsigned integer types and the float
// types; any other value yields "".
func Stringify(v any) string {
	switch x := v.(type) {
	case TextConvertible:
		return x.Text()
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return ""
	}
}

// Unstringify fills v from its text form.
func Unstringify(s string, v TextConvertible) error {
	return v.SetText(s)
}

// UnstringifyBool converts s to a bool. The second result is false when
// s is not a recognized boolean literal; the value is then the zero
// value.
func UnstringifyBool(s string) (bool, bool) {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}

// UnstringifyInt converts s to an int, reporting failure rather than
// clamping; use the number package for clamped conversion.
func UnstringifyInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// UnstringifyFloat64 converts s to a float64.
func UnstringifyFloat64(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
