package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenepipe/stringkit/convert"
	"github.com/scenepipe/stringkit/number"
)

type parseOptions struct {
	typ string
}

func newParseCmd() *cobra.Command {
	opts := parseOptions{typ: "double"}
	cmd := &cobra.Command{
		Use:   "parse value...",
		Short: "Convert decimal text to numbers with overflow clamping",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.typ, "type", "t", "double",
		"target type: long, ulong, int64, uint64 or double")
	return cmd
}

func runParse(out io.Writer, opts parseOptions, args []string) error {
	for _, a := range args {
		var (
			text     string
			overflow bool
		)
		switch opts.typ {
		case "double":
			text = convert.Stringify(number.ParseDouble(a))
		case "long":
			var v int
			v, overflow = number.ParseLong(a)
			text = convert.Stringify(v)
		case "ulong":
			var v uint
			v, overflow = number.ParseULong(a)
			text = convert.Stringify(v)
		case "int64":
			var v int64
			v, overflow = number.ParseInt64(a)
			text = convert.Stringify(v)
		case "uint64":
			var v uint64
			v, overflow = number.ParseUint64(a)
			text = convert.Stringify(v)
		default:
			return fmt.Errorf("unknown target type %q", opts.typ)
		}
		if overflow {
			printDiag(fmt.Errorf("%q out of range, clamped to %s", a, text))
		}
		fmt.Fprintln(out, text)
	}
	return nil
}
