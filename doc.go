/*
Package utf8seq offers a growable, UTF-8 aware character sequence.

Sequences

A Sequence owns a byte buffer obtained from an allocator (see package alloc)
and keeps track of how many bytes of it hold content. The content is always a
run of complete UTF-8 encoded code points. Sequences therefore work with two
coordinate systems:

	size      number of content bytes, stored
	length    number of code points, derived by scanning the content

Operations taking an index (Insert, Remove, RemoveRange, CharAt, Split, Substr)
count in code points. Translating such an index into a byte offset walks the
content from its start, so these operations are O(n). Byte offsets are used
internally only.

There are two flavours of the same type. Sequence stores its allocator and is
the one most clients will use. Unmanaged does not store an allocator; every
method which may allocate or release takes it as a parameter. Both share one
implementation; a Sequence is just an Unmanaged plus an allocator.

	s := utf8seq.New(alloc.Heap)
	defer s.Deinit()
	s.ConcatString("🔥 Hello!")
	s.Pop()                       // removes "!"
	s.ConcatString(", World 🔥")  // "🔥 Hello, World 🔥"

Views

Str, CharAt, Pop, Split, SplitAll and Iterator hand out slices which alias the
sequence's buffer. They are valid until the next mutation of the sequence:
growing may move the buffer, and even mutations which do not reallocate shift
bytes underneath a view. Clients which need to keep a view around must copy it
(String, Clone, Substr, ToOwned).

Sequences are not synchronized. A sequence has exactly one owner at a time.

Errors

Only two error conditions exist: the allocator fails (ErrOutOfMemory) or a
caller-supplied range is invalid (ErrInvalidRange). Everything which may simply
be absent (a substring, a split block, a character at an index) is reported by
a boolean, not by an error.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package utf8seq

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/utf8seq/alloc"
)

// tracer writes to trace with key 'utf8seq'
func tracer() tracing.Trace {
	return tracing.Select("utf8seq")
}

// SeqError is an error type for the utf8seq module
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrInvalidRange is flagged whenever a range (start, end) of logical indices
// has end < start or end > length.
const ErrInvalidRange = SeqError("invalid range")

// ErrOutOfMemory is flagged whenever the allocator of a sequence fails.
// It is the same value as alloc.ErrOutOfMemory.
var ErrOutOfMemory = alloc.ErrOutOfMemory
