package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scenepipe/stringkit/dictsort"
	"github.com/scenepipe/stringkit/token"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort input lines in dictionary order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.OutOrStdout(), args)
		},
	}
}

func runSort(out io.Writer, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	lines := token.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	dictsort.Sort(lines)
	for _, ln := range lines {
		fmt.Fprintln(out, ln)
	}
	return nil
}
