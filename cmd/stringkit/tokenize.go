package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenepipe/stringkit/debug"
	"github.com/scenepipe/stringkit/token"
)

type tokenizeOptions struct {
	cfgPath    string
	mode       string
	delimiters string
	sep        string
	openDelim  string
	closeDelim string
	escapeChar string
}

func newTokenizeCmd() *cobra.Command {
	opts := tokenizeOptions{
		mode:       "simple",
		delimiters: token.DefaultDelimiters,
		openDelim:  "{",
		closeDelim: "}",
	}
	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Split input into tokens, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokenize(cmd.OutOrStdout(), opts, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.cfgPath, "config", "", "tokenizer config yaml path")
	fs.StringVarP(&opts.mode, "mode", "m", "simple", "tokenizer mode: simple, quoted, matched or split")
	fs.StringVarP(&opts.delimiters, "delimiters", "d", token.DefaultDelimiters, "delimiter character set")
	fs.StringVar(&opts.sep, "sep", "", "literal separator for split mode")
	fs.StringVar(&opts.openDelim, "open", "{", "open delimiter for matched mode")
	fs.StringVar(&opts.closeDelim, "close", "}", "close delimiter for matched mode")
	fs.StringVar(&opts.escapeChar, "escape", "", "escape character for matched mode")
	return cmd
}

func runTokenize(out io.Writer, opts tokenizeOptions, args []string) error {
	if opts.cfgPath != "" {
		cfg, err := loadTokenizerConfig(opts.cfgPath)
		if err != nil {
			return err
		}
		applyConfig(&opts, cfg)
	}
	data, err := readInput(args)
	if err != nil {
		return err
	}
	src := string(data)

	var (
		toks  []string
		diags []token.Diagnostic
	)
	switch opts.mode {
	case "simple":
		toks = token.Tokenize(src, token.Options{Delimiters: opts.delimiters})
	case "split":
		toks = token.Split(src, opts.sep)
	case "quoted":
		toks, diags = token.Quoted(src, token.Options{Delimiters: opts.delimiters})
	case "matched":
		mo := token.MatchedOptions{}
		if mo.Open, err = onlyByte("open", opts.openDelim); err != nil {
			return err
		}
		if mo.Close, err = onlyByte("close", opts.closeDelim); err != nil {
			return err
		}
		if opts.escapeChar != "" {
			if mo.Escape, err = onlyByte("escape", opts.escapeChar); err != nil {
				return err
			}
		}
		toks, diags = token.Matched(src, mo)
	default:
		return fmt.Errorf("unknown tokenizer mode %q", opts.mode)
	}

	if debug.Tokenize() {
		debug.Logf("mode %s: %d tokens, %d diagnostics\n", opts.mode, len(toks), len(diags))
	}
	for _, d := range diags {
		printDiag(d)
	}
	for _, tok := range toks {
		fmt.Fprintln(out, tok)
	}
	return nil
}

func applyConfig(opts *tokenizeOptions, cfg *tokenizerConfig) {
	if cfg.Mode != "" {
		opts.mode = cfg.Mode
	}
	if cfg.Delimiters != "" {
		opts.delimiters = cfg.Delimiters
	}
	if cfg.Open != "" {
		opts.openDelim = cfg.Open
	}
	if cfg.Close != "" {
		opts.closeDelim = cfg.Close
	}
	if cfg.Escape != "" {
		opts.escapeChar = cfg.Escape
	}
}

func onlyByte(name, v string) (byte, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("flag --%s must be a single character, got %q", name, v)
	}
	return v[0], nil
}
