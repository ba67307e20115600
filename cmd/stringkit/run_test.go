package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/scenepipe/stringkit/token"
)

func TestRunTokenizeQuoted(t *testing.T) {
	p := writeFile(t, "in.txt", `a "b c" d`)
	opts := tokenizeOptions{mode: "quoted", delimiters: token.DefaultDelimiters}
	var out bytes.Buffer
	if err := runTokenize(&out, opts, []string{p}); err != nil {
		t.Fatal(err)
	}
	want := "a\nb c\nd\n"
	if out.String() != want {
		t.Errorf("output = %q; want %q", out.String(), want)
	}
}

func TestRunTokenizeMatched(t *testing.T) {
	p := writeFile(t, "in.txt", "{a} string {to {be} split}")
	opts := tokenizeOptions{mode: "matched", openDelim: "{", closeDelim: "}"}
	var out bytes.Buffer
	if err := runTokenize(&out, opts, []string{p}); err != nil {
		t.Fatal(err)
	}
	want := "a\nto {be} split\n"
	if out.String() != want {
		t.Errorf("output = %q; want %q", out.String(), want)
	}
}

func TestRunTokenizeBadMode(t *testing.T) {
	p := writeFile(t, "in.txt", "x")
	opts := tokenizeOptions{mode: "nope"}
	if err := runTokenize(&bytes.Buffer{}, opts, []string{p}); err == nil {
		t.Errorf("unknown mode: want error")
	}
	opts = tokenizeOptions{mode: "matched", openDelim: "{{", closeDelim: "}"}
	if err := runTokenize(&bytes.Buffer{}, opts, []string{p}); err == nil {
		t.Errorf("multi-character delimiter: want error")
	}
}

func TestRunParse(t *testing.T) {
	var out bytes.Buffer
	if err := runParse(&out, parseOptions{typ: "int64"}, []string{"42", "-7"}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "42\n-7\n" {
		t.Errorf("output = %q", out.String())
	}
	out.Reset()
	if err := runParse(&out, parseOptions{typ: "double"}, []string{"1.2foo", "-"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "1.2\n") {
		t.Errorf("output = %q", out.String())
	}
	if err := runParse(&out, parseOptions{typ: "complex"}, []string{"1"}); err == nil {
		t.Errorf("unknown type: want error")
	}
}

func TestRunIdent(t *testing.T) {
	var out bytes.Buffer
	if err := runIdent(&out, identOptions{}, []string{"2foo", "ok_name"}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "_foo\nok_name\n" {
		t.Errorf("output = %q", out.String())
	}
	out.Reset()
	if err := runIdent(&out, identOptions{check: true}, []string{"bad-name"}); err == nil {
		t.Errorf("check mode with invalid input: want error")
	}
}

func TestRunPathjoin(t *testing.T) {
	var out bytes.Buffer
	if err := runPathjoin(&out, "foo/bar", "../jive"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "foo/jive\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunEscape(t *testing.T) {
	p := writeFile(t, "in.txt", `a\tb`)
	var out bytes.Buffer
	if err := runEscape(&out, escapeOptions{mode: "decode"}, []string{p}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a\tb" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunSort(t *testing.T) {
	p := writeFile(t, "in.txt", "file2\nAlbert\nalbert\nbaby\n")
	var out bytes.Buffer
	if err := runSort(&out, []string{p}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Albert\nalbert\nbaby\nfile2\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestReadInputZstd(t *testing.T) {
	p := filepath.Join(t.TempDir(), "corpus.txt.zst")
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte("alpha beta")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := readInput([]string{p})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alpha beta" {
		t.Errorf("readInput = %q; want %q", data, "alpha beta")
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"tokenize", "parse", "sort", "ident", "escape", "pathjoin"} {
		c, _, err := root.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("subcommand %q not wired: %v", name, err)
		}
	}
}
