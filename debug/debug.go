// Package debug holds environment-driven debug switches for the
// stringkit command line tool. The library packages stay pure and never
// log; only cmd/stringkit consults these switches.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Config   bool
	Input    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("STRINGKIT_DEBUG_TOKENIZE")
	d.Config = boolEnv("STRINGKIT_DEBUG_CONFIG")
	d.Input = boolEnv("STRINGKIT_DEBUG_INPUT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Config() bool {
	return d.Config
}
func Input() bool {
	return d.Input
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
