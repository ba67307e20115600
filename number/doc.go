// Package number converts decimal text to numeric values with explicit
// overflow policy.
//
// The integer parsers assume their input already matches -?[0-9]+ (or
// [0-9]+ for the unsigned variants); they are meant for text that has
// already been through a lexer and trade validation for throughput. On
// magnitude overflow they clamp to the nearest representable extremum
// and report it, rather than failing.
//
// [ParseDouble] implements a restricted float grammar and never fails;
// trailing garbage is ignored.
package number
