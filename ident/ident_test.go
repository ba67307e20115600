package ident

import "testing"

func TestIsValid(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"foo", true},
		{"_foo", true},
		{"_", true},
		{"foo_bar2", true},
		{"F00", true},
		{"", false},
		{"2foo", false},
		{"foo-bar", false},
		{"foo bar", false},
		{"foo.bar", false},
		{"né", false},
	} {
		if got := IsValid(tc.in); got != tc.want {
			t.Errorf("IsValid(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"foo", "foo"},
		{"2foo", "_foo"},
		{"foo-bar", "foo_bar"},
		{"a b.c", "a_b_c"},
		{"", "_"},
		{"9", "_"},
		{"x9", "x9"},
	} {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{"", "foo", "2foo", "a-b-c", "white space", "___", "né9"}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize(Sanitize(%q)) = %q; want %q", in, twice, once)
		}
		if !IsValid(once) {
			t.Errorf("Sanitize(%q) = %q is not valid", in, once)
		}
	}
}
