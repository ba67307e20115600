package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenepipe/stringkit/ident"
)

type identOptions struct {
	check bool
}

func newIdentCmd() *cobra.Command {
	opts := identOptions{}
	cmd := &cobra.Command{
		Use:   "ident value...",
		Short: "Sanitize strings into valid bare identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdent(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.check, "check", false, "only report validity, do not rewrite")
	return cmd
}

func runIdent(out io.Writer, opts identOptions, args []string) error {
	bad := 0
	for _, a := range args {
		if opts.check {
			fmt.Fprintf(out, "%s\t%v\n", a, ident.IsValid(a))
			if !ident.IsValid(a) {
				bad++
			}
			continue
		}
		fmt.Fprintln(out, ident.Sanitize(a))
	}
	if opts.check && bad > 0 {
		return fmt.Errorf("%d invalid identifier(s)", bad)
	}
	return nil
}
