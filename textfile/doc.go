/*
Package textfile provides API helpers to load UTF-8 text files as sequences.

Files are read in fragments, whose size depends on the size of the file.
Code points split across fragment borders are carried over to the next
fragment, and every fragment is checked for valid UTF-8 before it is appended.
Clients may subscribe to a Loader to receive Progress messages while a file is
being read.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'utf8seq'
func tracer() tracing.Trace {
	return tracing.Select("utf8seq")
}

// ErrNotRegular is returned when trying to load anything but a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrInvalidUTF8 is returned when the file content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")
