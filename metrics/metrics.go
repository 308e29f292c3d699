package metrics

import (
	"fmt"

	"github.com/npillmayer/utf8seq"
	"github.com/npillmayer/utf8seq/index"
)

// CountingMetric is a type for metrics that count items in text. Possible
// items may be lines, words, emojis, …
type CountingMetric interface {
	Count(text []byte) int
}

// ScanningMetric searches a text for items (such as lines, words, emojis, …) and
// returns their locations as pairs of byte offsets.
type ScanningMetric interface {
	Locations(text []byte) [][]int
}

// span returns the content bytes of the code points [i,j) of s and the byte
// offset of i.
func span(s *utf8seq.Sequence, i, j int) ([]byte, int, error) {
	text := s.Str()
	bs, be, ok := index.Range(text, i, j)
	if !ok {
		return nil, 0, utf8seq.ErrInvalidRange
	}
	return text[bs:be], bs, nil
}

// Count applies a counting metric to the code points [i,j) of s.
func Count(s *utf8seq.Sequence, i, j int, metric CountingMetric) (int, error) {
	text, _, err := span(s, i, j)
	if err != nil {
		return -1, fmt.Errorf("metrics.Count could not be applied: %w", err)
	}
	return metric.Count(text), nil
}

// Find applies a scanning metric to the code points [i,j) of s. Locations are
// byte offsets relative to the start of s.
func Find(s *utf8seq.Sequence, i, j int, metric ScanningMetric) ([][]int, error) {
	text, base, err := span(s, i, j)
	if err != nil {
		return [][]int{}, fmt.Errorf("metrics.Find could not be applied: %w", err)
	}
	locs := metric.Locations(text)
	for _, loc := range locs {
		for k := range loc {
			loc[k] += base
		}
	}
	return locs, nil
}
