package plist

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DumpOptions controls the rendering produced by Dump.
type DumpOptions struct {
	// Color enables ANSI coloring of kind tags, key names, and scalar
	// values. Disabled by default since the output is consumed by
	// programs and log files as often as terminals.
	Color bool
	// Indent is the number of spaces added per nesting level. Zero
	// selects the default of 8, matching the classic plist dump style.
	Indent int
}

// DefaultDumpOptions returns the zero-configuration rendering: no
// color, 8-space indent steps.
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{Indent: 8}
}

type dumpColors struct {
	key  func(string, ...any) string
	tag  func(string, ...any) string
	str  func(string, ...any) string
	num  func(string, ...any) string
	bool func(string, ...any) string
}

func newDumpColors(enabled bool) dumpColors {
	if !enabled {
		plain := func(s string, args ...any) string { return fmt.Sprintf(s, args...) }
		return dumpColors{key: plain, tag: plain, str: plain, num: plain, bool: plain}
	}
	return dumpColors{
		key:  color.New(color.FgBlue, color.Bold).SprintfFunc(),
		tag:  color.New(color.FgMagenta).SprintfFunc(),
		str:  color.New(color.FgGreen).SprintfFunc(),
		num:  color.New(color.FgCyan).SprintfFunc(),
		bool: color.New(color.FgYellow).SprintfFunc(),
	}
}

// Dump writes an indented, human-readable rendering of n to w using
// DefaultDumpOptions.
func Dump(n *Node, w io.Writer) error {
	return DumpWithOptions(n, w, DefaultDumpOptions())
}

// DumpWithOptions writes an indented rendering of n to w under opts. The
// format is informational: it is not a parseable interchange encoding.
func DumpWithOptions(n *Node, w io.Writer, opts DumpOptions) error {
	if opts.Indent <= 0 {
		opts.Indent = 8
	}
	d := &dumper{w: w, step: opts.Indent, colors: newDumpColors(opts.Color)}
	return d.dumpNode(n, 0)
}

type dumper struct {
	w      io.Writer
	step   int
	colors dumpColors
}

func (d *dumper) pad(depth int) string {
	return strings.Repeat(" ", depth*d.step)
}

func (d *dumper) printf(depth int, format string, args ...any) error {
	_, err := fmt.Fprintf(d.w, "%s%s\n", d.pad(depth), fmt.Sprintf(format, args...))
	return err
}

func (d *dumper) dumpNode(n *Node, depth int) error {
	if n == nil {
		return d.printf(depth, "%s", d.colors.tag("<nil>"))
	}
	switch n.kind {
	case KindDict:
		if err := d.printf(depth, "%s", d.colors.tag("dict {")); err != nil {
			return err
		}
		for _, entry := range n.dict.keys {
			if err := d.dumpKey(entry, depth+1); err != nil {
				return err
			}
		}
		return d.printf(depth, "%s", d.colors.tag("}"))

	case KindArray:
		if err := d.printf(depth, "%s", d.colors.tag("array (")); err != nil {
			return err
		}
		for _, elem := range n.array.elems {
			if err := d.dumpNode(elem, depth+1); err != nil {
				return err
			}
		}
		return d.printf(depth, "%s", d.colors.tag(")"))

	case KindString:
		return d.printf(depth, "%s", d.colors.str("%q", n.str))

	case KindInteger:
		return d.printf(depth, "%s", d.colors.num("%d", n.integer))

	case KindReal:
		return d.printf(depth, "%s", d.colors.num("%g", n.real))

	case KindBoolean:
		return d.printf(depth, "%s", d.colors.bool("%t", n.boolean))

	case KindDate:
		return d.printf(depth, "%s", d.colors.num("%s", formatDate(n.date)))

	case KindData:
		if err := d.printf(depth, "%s", d.colors.tag("data <%d bytes>", len(n.data))); err != nil {
			return err
		}
		return d.dumpHex(n.data, depth+1)

	default:
		return d.printf(depth, "%s", d.colors.tag("<%s>", n.kind))
	}
}

func (d *dumper) dumpKey(entry *Node, depth int) error {
	if err := d.printf(depth, "%s =", d.colors.key("%q", entry.key.name)); err != nil {
		return err
	}
	return d.dumpNode(entry.key.value, depth+1)
}

// dumpHex renders buf as a classic hex dump: an offset prefix, 16 bytes
// per row in hex, followed by an ASCII column with '.' for
// non-printable bytes.
func (d *dumper) dumpHex(buf []byte, depth int) error {
	const width = 16
	for off := 0; off < len(buf); off += width {
		row := buf[off:min(off+width, len(buf))]
		var hex strings.Builder
		var ascii strings.Builder
		for i := 0; i < width; i++ {
			if i < len(row) {
				fmt.Fprintf(&hex, "%02x ", row[i])
				if row[i] >= 0x20 && row[i] < 0x7f {
					ascii.WriteByte(row[i])
				} else {
					ascii.WriteByte('.')
				}
			} else {
				hex.WriteString("   ")
			}
		}
		if err := d.printf(depth, "%08x  %s %s", off, hex.String(), ascii.String()); err != nil {
			return err
		}
	}
	return nil
}

func formatDate(d Date) string {
	sign := "+"
	off := d.TZOffsetSeconds
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s%02d%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second,
		sign, off/3600, (off%3600)/60)
}
