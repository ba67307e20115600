package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	cmd := &cobra.Command{
		Use:           "stringkit",
		Short:         "Tokenize, parse and rewrite raw text",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newSortCmd(),
		newIdentCmd(),
		newEscapeCmd(),
		newPathjoinCmd(),
	)
	return cmd
}

var diagColor = color.New(color.FgRed)

func printDiag(err error) {
	diagColor.Fprintf(os.Stderr, "stringkit: %v\n", err)
}
