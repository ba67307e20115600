package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scenepipe/stringkit/escape"
)

type escapeOptions struct {
	mode string
}

func newEscapeCmd() *cobra.Command {
	opts := escapeOptions{mode: "decode"}
	cmd := &cobra.Command{
		Use:   "escape [file]",
		Short: "Decode backslash escapes or encode reserved characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEscape(cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "decode",
		"transform: decode (C escapes), xml (entity encode) or glob (glob to regex)")
	return cmd
}

func runEscape(out io.Writer, opts escapeOptions, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	src := string(data)
	switch opts.mode {
	case "decode":
		src = escape.Decode(src)
	case "xml":
		src = escape.XML(src)
	case "glob":
		src = escape.GlobToRegex(src)
	default:
		return fmt.Errorf("unknown escape mode %q", opts.mode)
	}
	_, err = io.WriteString(out, src)
	return err
}
