// Command plistdump parses an ASCII plist document from a file or
// stdin and prints an indented rendering of its tree.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ckhardin/libplist-posix/plist"
	"github.com/ckhardin/libplist-posix/plistio"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var r io.Reader = os.Stdin
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			logger.Error("open input", "path", os.Args[1], "err", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	node, err := parseOne(r)
	if err != nil {
		logger.Error("parse", "err", err)
		os.Exit(1)
	}

	opts := plist.DefaultDumpOptions()
	opts.Color = useColor()
	if err := plist.DumpWithOptions(node, os.Stdout, opts); err != nil {
		logger.Error("dump", "err", err)
		os.Exit(1)
	}
}

// parseOne reads r in plistio.DefaultChunkSize pieces, explicitly, to
// exercise the chunked Feed contract rather than slurping the whole
// input with io.ReadAll.
func parseOne(r io.Reader) (*plist.Node, error) {
	dec := plistio.NewDecoder(r)
	node, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("plistdump: %w", err)
	}
	return node, nil
}

func useColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}
