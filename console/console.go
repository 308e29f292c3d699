/*
Package console displays UTF-8 sequences on terminals.

Console output is tricky for scripts other than Latin: the number of code
points of a text tells little about the number of fixed-width cells it
occupies. Package console measures sequences in terminal cells (“en”s), using
the East Asian Width rules of UAX#11, and dumps sequences code point by code
point for debugging.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"io"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/utf8seq"
	"golang.org/x/term"
)

// tracer writes to trace with key 'utf8seq'
func tracer() tracing.Trace {
	return tracing.Select("utf8seq")
}

var setupGraphemes sync.Once

// Width returns the number of fixed-width cells the content of s occupies
// on a terminal. If ctx is nil, uax11.LatinContext is used.
func Width(s *utf8seq.Sequence, ctx *uax11.Context) int {
	if s == nil || s.IsEmpty() {
		return 0
	}
	return StringWidth(s.String(), ctx)
}

// StringWidth returns the number of fixed-width cells str occupies.
func StringWidth(str string, ctx *uax11.Context) int {
	if str == "" {
		return 0
	}
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(str), ctx)
}

// IsTerminal reports whether w is connected to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// LineWidth is a simple heuristic for the usable width of stdout, in fixed-width
// cells. If stdout is not a terminal, it returns 65.
func LineWidth() int {
	width := 65
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil {
			if w > 65 {
				width = w - 10
			} else if w > 30 {
				width = w - 5
			} else if w > 10 {
				width = w
			} else {
				width = 10
			}
		}
	}
	tracer().Debugf("console: setting line width to %d en", width)
	return width
}

// Print writes the content of s to w. If ctx is not nil, the content is
// padded with spaces to at least width cells.
func Print(w io.Writer, s *utf8seq.Sequence, width int, ctx *uax11.Context) error {
	if s == nil {
		return nil
	}
	if _, err := io.Copy(w, s.Reader()); err != nil {
		return err
	}
	if ctx == nil {
		return nil
	}
	for pad := width - Width(s, ctx); pad > 0; pad-- {
		if _, err := w.Write([]byte{' '}); err != nil {
			return err
		}
	}
	return nil
}
