package utf8seq

import (
	"iter"

	"github.com/npillmayer/utf8seq/index"
)

// Iterator steps through the code points of a sequence.
//
// An iterator borrows its sequence. It must not be used after the sequence has
// been mutated, and it cannot be restarted; call Iterator again instead.
type Iterator struct {
	u   *Unmanaged
	pos int
}

// Iterator creates an iterator positioned at the first code point.
func (u *Unmanaged) Iterator() *Iterator {
	return &Iterator{u: u}
}

// Next returns the code point at the cursor and advances past it.
// If the cursor has reached the end of the content, ok is false.
func (it *Iterator) Next() (char []byte, ok bool) {
	if it == nil || it.u == nil || it.pos >= it.u.size {
		return nil, false
	}
	text := it.u.Str()
	w := index.Width(text, it.pos)
	char = text[it.pos : it.pos+w]
	it.pos += w
	return char, true
}

// ByteOffset returns the current cursor position in bytes.
func (it *Iterator) ByteOffset() int {
	if it == nil {
		return 0
	}
	return it.pos
}

// Chars returns an iterator over all code points in logical order.
// The same borrowing rules as for Iterator apply.
func (u *Unmanaged) Chars() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it := u.Iterator()
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
