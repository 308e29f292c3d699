package metrics

import (
	"fmt"
	"regexp"
)

// --- Delimiter metric ------------------------------------------------------

// DelimiterMetric finds the matches of a regular expression in a text.
type DelimiterMetric struct {
	pattern *regexp.Regexp
}

var _ CountingMetric = (*DelimiterMetric)(nil)
var _ ScanningMetric = (*DelimiterMetric)(nil)

// Delimiter creates a metric for delimiters matching pattern. Patterns which
// match the empty string are rejected.
func Delimiter(pattern string) (*DelimiterMetric, error) {
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("delimiter metric: cannot compile regular expression input")
		return nil, fmt.Errorf("illegal delimiter: %w", err)
	}
	if r.MatchString("") {
		tracer().Errorf("delimiter metric: regular expression matches empty string")
		return nil, ErrIllegalDelimiterPattern
	}
	return &DelimiterMetric{pattern: r}, nil
}

// Count returns the number of delimiters in text.
func (dm *DelimiterMetric) Count(text []byte) int {
	return len(dm.Locations(text))
}

// Locations returns the [start,end) byte ranges of all delimiters in text.
func (dm *DelimiterMetric) Locations(text []byte) [][]int {
	parts := dm.pattern.FindAllIndex(text, -1)
	if len(parts) == 0 {
		parts = [][]int{} // no delimiter in text
	}
	return parts
}

// --- Line count metric -----------------------------------------------------

type lineCount struct {
	*DelimiterMetric
}

// LineCount is a metric that counts the lines of a text, delimited by newline
// characters. Multiple consecutive newlines will be counted as multiple empty
// lines. A text without a newline is one line; a newline at the end of the
// text does not start a new line.
func LineCount() CountingMetric {
	m, _ := Delimiter("\n")
	return lineCount{m}
}

func (lc lineCount) Count(text []byte) int {
	if len(text) == 0 {
		return 0
	}
	n := lc.DelimiterMetric.Count(text)
	if text[len(text)-1] != '\n' {
		n++
	}
	return n
}
