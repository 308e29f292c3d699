/*
Package html extracts the textual content of HTML as UTF-8 sequences.

Entities are decoded by the HTML parser, thus the resulting sequences hold
plain UTF-8 text. No layout or styling is interpreted.
*/
package html

import (
	"errors"
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/utf8seq"
	"github.com/npillmayer/utf8seq/alloc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'utf8seq'
func tracer() tracing.Trace {
	return tracing.Select("utf8seq")
}

// ErrNoNode is returned by InnerText for a nil node.
var ErrNoNode = errors.New("html: no node")

// InnerText creates a sequence for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents). Content of script and style
// elements is skipped.
func InnerText(a alloc.Allocator, n *html.Node) (*utf8seq.Sequence, error) {
	if n == nil {
		return nil, ErrNoNode
	}
	s := utf8seq.New(a)
	if err := collectText(n, s.Writer()); err != nil {
		s.Deinit()
		return nil, err
	}
	return s, nil
}

// TextFromHTML creates a sequence from the textual content of an HTML fragment.
func TextFromHTML(a alloc.Allocator, input io.Reader) (*utf8seq.Sequence, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	s := utf8seq.New(a)
	w := s.Writer()
	for _, n := range nodes {
		if err = collectText(n, w); err != nil {
			s.Deinit()
			return nil, err
		}
	}
	tracer().Debugf("html: extracted %d bytes of text from %d nodes", s.Size(), len(nodes))
	return s, nil
}

func collectText(n *html.Node, w *utf8seq.Writer) error {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return nil
		}
	case html.TextNode:
		if _, err := w.WriteString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, w); err != nil {
			return err
		}
	}
	return nil
}
