package utf8seq

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"math"
	"unsafe"

	"github.com/npillmayer/utf8seq/alloc"
	"github.com/npillmayer/utf8seq/index"
)

// Unmanaged is a UTF-8 sequence which does not store its allocator. Every
// method which may allocate or release memory takes the allocator as a
// parameter, and clients must pass the same allocator over the lifetime of
// a value.
//
// The zero value
//
//	Unmanaged{}
//
// is a valid, empty sequence without a buffer.
//
// Literals handed to a sequence are expected to be valid UTF-8; they are not
// validated.
type Unmanaged struct {
	buf  []byte // capacity is len(buf)
	size int    // content is buf[:size]
}

// UnmanagedWithContents creates a sequence holding a copy of contents. The
// buffer is sized to fit contents exactly.
func UnmanagedWithContents(a alloc.Allocator, contents []byte) (Unmanaged, error) {
	var u Unmanaged
	if len(contents) == 0 {
		return u, nil
	}
	b, err := a.Alloc(len(contents))
	if err != nil {
		return u, err
	}
	u.size = copy(b, contents)
	u.buf = b
	return u, nil
}

// Deinit releases the buffer. The sequence is empty and unallocated afterwards.
func (u *Unmanaged) Deinit(a alloc.Allocator) {
	if u.buf != nil {
		a.Free(u.buf)
	}
	u.buf = nil
	u.size = 0
}

// Managed wraps u into a Sequence using allocator a. Ownership of the buffer
// moves to the returned Sequence; u is reset.
func (u *Unmanaged) Managed(a alloc.Allocator) *Sequence {
	s := New(a)
	s.core = *u
	*u = Unmanaged{}
	return s
}

// --- Queries ---------------------------------------------------------------

// Capacity returns the size of the buffer in bytes, 0 if it has never been
// allocated.
func (u *Unmanaged) Capacity() int {
	return len(u.buf)
}

// Size returns the number of content bytes.
func (u *Unmanaged) Size() int {
	return u.size
}

// Len returns the number of code points. It is O(n).
func (u *Unmanaged) Len() int {
	return index.Count(u.Str())
}

// IsEmpty reports whether the sequence has no content.
func (u *Unmanaged) IsEmpty() bool {
	return u.size == 0
}

// Str returns a view of the content. The view aliases the buffer and is valid
// until the next mutation.
func (u *Unmanaged) Str() []byte {
	return u.buf[:u.size:u.size]
}

// String returns a copy of the content.
func (u *Unmanaged) String() string {
	return string(u.buf[:u.size])
}

// Summary returns byte, code-point and newline counts of the content.
func (u *Unmanaged) Summary() index.Summary {
	return index.Summarize(u.Str())
}

// Equal reports whether u and other hold the same content.
func (u *Unmanaged) Equal(other *Unmanaged) bool {
	return bytes.Equal(u.Str(), other.Str())
}

// --- Capacity management ---------------------------------------------------

// SetCapacity resizes the buffer to n bytes. Growing preserves the content.
// Shrinking below Size drops every code point which does not fit completely
// into n bytes. A failing allocator leaves the sequence unchanged.
func (u *Unmanaged) SetCapacity(a alloc.Allocator, n int) error {
	if n < 0 {
		n = 0
	}
	if n == len(u.buf) {
		return nil
	}
	size := u.size
	if size > n {
		size = index.Floor(u.Str(), n)
	}
	b, err := a.Realloc(u.buf, n)
	if err != nil {
		tracer().Errorf("utf8seq: cannot resize buffer %d → %d: %v", len(u.buf), n, err)
		return err
	}
	u.buf = b
	u.size = size
	return nil
}

// Truncate shrinks the buffer to fit the content.
func (u *Unmanaged) Truncate(a alloc.Allocator) error {
	return u.SetCapacity(a, u.size)
}

// ensure makes room for extra more bytes. If the buffer has to grow, it grows
// to twice the required size.
func (u *Unmanaged) ensure(a alloc.Allocator, extra int) error {
	if extra > math.MaxInt/2-u.size {
		return ErrOutOfMemory
	}
	needed := u.size + extra
	if needed <= len(u.buf) {
		return nil
	}
	tracer().Debugf("utf8seq: growing buffer %d → %d", len(u.buf), needed*2)
	return u.SetCapacity(a, needed*2)
}

// overlaps reports whether lit aliases (parts of) the buffer.
func (u *Unmanaged) overlaps(lit []byte) bool {
	if len(lit) == 0 || len(u.buf) == 0 {
		return false
	}
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(u.buf)))
	l0 := uintptr(unsafe.Pointer(unsafe.SliceData(lit)))
	return l0 < b0+uintptr(len(u.buf)) && b0 < l0+uintptr(len(lit))
}

// --- Structural mutation ---------------------------------------------------

// Concat appends lit. Appending is amortized O(1), as the buffer grows
// geometrically.
func (u *Unmanaged) Concat(a alloc.Allocator, lit []byte) error {
	return u.insertAt(a, lit, -1)
}

// ConcatString appends s.
func (u *Unmanaged) ConcatString(a alloc.Allocator, s string) error {
	return u.Concat(a, []byte(s))
}

// Insert inserts lit before the code point at logical index i. An index at or
// beyond the end appends lit.
func (u *Unmanaged) Insert(a alloc.Allocator, lit []byte, i int) error {
	at, ok := index.ToByte(u.Str(), i)
	if !ok {
		at = -1
	}
	return u.insertAt(a, lit, at)
}

// insertAt inserts lit at byte offset at, which must be a code-point boundary.
// at < 0 appends.
func (u *Unmanaged) insertAt(a alloc.Allocator, lit []byte, at int) error {
	if len(lit) == 0 {
		return nil
	}
	if u.overlaps(lit) {
		lit = bytes.Clone(lit)
	}
	if err := u.ensure(a, len(lit)); err != nil {
		return err
	}
	if at < 0 || at > u.size {
		at = u.size
	}
	copy(u.buf[at+len(lit):], u.buf[at:u.size])
	copy(u.buf[at:], lit)
	u.size += len(lit)
	return nil
}

// InsertString inserts s before the code point at logical index i.
func (u *Unmanaged) InsertString(a alloc.Allocator, s string, i int) error {
	return u.Insert(a, []byte(s), i)
}

// Pop removes the last code point and returns it. The returned view points
// into the unused part of the buffer and is valid until the next mutation.
func (u *Unmanaged) Pop() ([]byte, bool) {
	if u.size == 0 {
		return nil, false
	}
	last := index.LastStart(u.Str())
	end := u.size
	u.size = last
	return u.buf[last:end:end], true
}

// Remove removes the code point at logical index i.
func (u *Unmanaged) Remove(i int) error {
	return u.RemoveRange(i, i+1)
}

// RemoveRange removes the code points [start,end). It fails with
// ErrInvalidRange if end < start or end > Len(); the content is unchanged then.
func (u *Unmanaged) RemoveRange(start, end int) error {
	text := u.Str()
	if start < 0 || end < start || end > index.Count(text) {
		return ErrInvalidRange
	}
	bs, be, ok := index.Range(text, start, end)
	if !ok {
		return ErrInvalidRange
	}
	copy(u.buf[bs:], u.buf[be:u.size])
	u.size -= be - bs
	return nil
}

// Reverse reverses the order of the code points. The bytes inside each code
// point keep their order.
func (u *Unmanaged) Reverse() {
	text := u.Str()
	for i := 0; i < len(text); {
		w := index.Width(text, i)
		reverseBytes(text[i : i+w])
		i += w
	}
	reverseBytes(text)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Repeat appends n more copies of the content, resulting in n+1 copies in total.
// n ≤ 0 is a no-op.
func (u *Unmanaged) Repeat(a alloc.Allocator, n int) error {
	if n <= 0 || u.size == 0 {
		return nil
	}
	if u.size > math.MaxInt/(n+1) {
		return ErrOutOfMemory
	}
	total := u.size * (n + 1)
	if total > len(u.buf) {
		if err := u.SetCapacity(a, total); err != nil {
			return err
		}
	}
	for k := 1; k <= n; k++ {
		copy(u.buf[k*u.size:], u.buf[:u.size])
	}
	u.size = total
	return nil
}

// Whitespace is the default whitelist for trimming.
var Whitespace = []byte{' ', '\t', '\n', '\r'}

// TrimStart strips leading bytes contained in whitelist. Whitelist entries are
// single ASCII bytes; trimming stops at the first multi-byte code point.
func (u *Unmanaged) TrimStart(whitelist []byte) {
	i := 0
	for i < u.size {
		c := u.buf[i]
		if index.SeqLen(c) > 1 || bytes.IndexByte(whitelist, c) < 0 {
			break
		}
		i++
	}
	if i > 0 {
		copy(u.buf, u.buf[i:u.size])
		u.size -= i
	}
}

// TrimEnd strips trailing bytes contained in whitelist. It is implemented as
// reverse, TrimStart, reverse, thus it pays for two reversals.
func (u *Unmanaged) TrimEnd(whitelist []byte) {
	u.Reverse()
	u.TrimStart(whitelist)
	u.Reverse()
}

// Trim strips whitelisted bytes from both ends.
func (u *Unmanaged) Trim(whitelist []byte) {
	u.TrimStart(whitelist)
	u.TrimEnd(whitelist)
}

// SetStr replaces the content with contents.
func (u *Unmanaged) SetStr(a alloc.Allocator, contents []byte) error {
	if u.overlaps(contents) {
		contents = bytes.Clone(contents)
	}
	u.Clear()
	return u.Concat(a, contents)
}

// Clear zeroes the content and sets the size to 0. The buffer is retained.
func (u *Unmanaged) Clear() {
	clear(u.buf[:u.size])
	u.size = 0
}
