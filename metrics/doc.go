/*
Package metrics provides some pre-manufactured metrics on UTF-8 sequences.

Metrics are applied to a range of code points of a sequence. Counting metrics
count items (lines, delimiters), scanning metrics return the byte locations of
the items they found, and the Words metric materializes the words of a text
as a new sequence.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'utf8seq'
func tracer() tracing.Trace {
	return tracing.Select("utf8seq")
}

// ErrIllegalDelimiterPattern is returned for delimiter patterns which match the
// empty string.
var ErrIllegalDelimiterPattern = errors.New("metrics: illegal delimiter pattern")
