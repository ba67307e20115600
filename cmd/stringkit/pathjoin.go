package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenepipe/stringkit/paths"
)

func newPathjoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pathjoin prefix suffix",
		Short: "Concatenate two path-like strings, resolving .. segments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPathjoin(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func runPathjoin(out io.Writer, prefix, suffix string) error {
	_, err := fmt.Fprintln(out, paths.Join(prefix, suffix))
	return err
}
