package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/scenepipe/stringkit/debug"
)

// readInput reads the file named by the first argument, or stdin when
// no argument (or "-") is given. Files ending in .zst are transparently
// decompressed; bulk token corpora are usually stored compressed.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if debug.Input() {
		debug.Logf("read %d bytes from %s\n", len(data), path)
	}
	return data, nil
}
