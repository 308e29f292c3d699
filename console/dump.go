package console

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/utf8seq"
)

// Dumper lists the code points of a sequence, one per line, together with
// their logical index, byte offset and encoding.
//
// On terminals, code points are colored by their byte width. Writers which are
// not terminals get plain text.
type Dumper struct {
	colors map[int]*color.Color
	plain  bool
}

// NewDumper creates a dumper for w. colors maps byte widths (1 to 4) to colors;
// it may be nil, selecting a default palette.
func NewDumper(w io.Writer, colors map[int]*color.Color) *Dumper {
	d := &Dumper{colors: colors, plain: !IsTerminal(w)}
	if d.colors == nil {
		d.colors = makeDefaultPalette()
	}
	return d
}

func makeDefaultPalette() map[int]*color.Color {
	palette := map[int]*color.Color{
		2: color.New(color.FgGreen),
		3: color.New(color.FgYellow),
		4: color.New(color.FgMagenta),
	}
	return palette
}

// Dump writes one line per code point of s to w.
func (d *Dumper) Dump(w io.Writer, s *utf8seq.Sequence) error {
	if s == nil {
		return nil
	}
	it := s.Iterator()
	n := 0
	for char, ok := it.Next(); ok; char, ok = it.Next() {
		offset := it.ByteOffset() - len(char)
		if err := d.line(w, n, offset, char); err != nil {
			return err
		}
		n++
	}
	return nil
}

func (d *Dumper) line(w io.Writer, n, offset int, char []byte) (err error) {
	const format = "%4d %5d  %-12s %s\n"
	enc := fmt.Sprintf("% x", char)
	glyph := printable(char)
	if c, ok := d.colors[len(char)]; ok && !d.plain {
		_, err = c.Fprintf(w, format, n, offset, enc, glyph)
		return
	}
	_, err = fmt.Fprintf(w, format, n, offset, enc, glyph)
	return
}

func printable(char []byte) string {
	r, _ := utf8.DecodeRune(char)
	if r == utf8.RuneError || !unicode.IsGraphic(r) {
		return "·"
	}
	return string(char)
}
