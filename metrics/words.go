package metrics

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/utf8seq"
)

// Span is a byte-range descriptor inside a sequence.
//
// Pos is the start byte offset, Len is the span length in bytes.
type Span struct {
	Pos int
	Len int
}

// WordsValue is the result of a word-materialization pass.
type WordsValue struct {
	Spans []Span
}

// WordCount returns the number of recognized words.
func (v WordsValue) WordCount() int {
	return len(v.Spans)
}

// WordsMetric is a materialized word metric. Words are maximal runs of
// non-space code points.
type WordsMetric struct{}

// Words creates a materialized word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Count returns the number of words in text.
func (WordsMetric) Count(text []byte) int {
	return len(findWordSpans(text, 0))
}

// Apply scans the code points [i,j) of s for words and returns word spans plus
// a materialized sequence, allocated from the allocator of s.
//
// Materialization concatenates all recognized words in logical order and omits
// non-word separators. The materialized sequence is nil if no word was found.
func (WordsMetric) Apply(s *utf8seq.Sequence, i, j int) (WordsValue, *utf8seq.Sequence, error) {
	text, base, err := span(s, i, j)
	if err != nil {
		return WordsValue{}, nil, err
	}
	value := WordsValue{
		Spans: findWordSpans(text, base),
	}
	if len(value.Spans) == 0 {
		return value, nil, nil
	}
	totalBytes := 0
	for _, sp := range value.Spans {
		totalBytes += sp.Len
	}
	out, err := utf8seq.NewWithCapacity(s.Allocator(), totalBytes)
	if err != nil {
		return WordsValue{}, nil, err
	}
	for _, sp := range value.Spans {
		start := sp.Pos - base
		// capacity is sufficient, thus Concat cannot fail
		out.Concat(text[start : start+sp.Len])
	}
	tracer().Debugf("metrics: found %d words in %d bytes", len(value.Spans), len(text))
	return value, out, nil
}

func findWordSpans(b []byte, base int) []Span {
	spans := make([]Span, 0, 8)
	for pos := 0; pos < len(b); {
		r, width := utf8.DecodeRune(b[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(b) {
			r, width = utf8.DecodeRune(b[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, Span{
			Pos: base + start,
			Len: pos - start,
		})
	}
	return spans
}
