/*
Package index translates between the two coordinate systems of UTF-8 text:
byte offsets and code-point (logical) indices.

All functions walk the text from its start, advancing by the sequence length
announced by each lead byte. Nothing is cached, every translation is O(n).

Lead bytes are not validated strictly. A continuation byte or an invalid lead
byte counts as a sequence of length 1, so malformed input degrades into more
code points instead of stalling a walk.
*/
package index

// SeqLen returns the length of the UTF-8 sequence introduced by lead, 1…4.
func SeqLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xe0 == 0xc0:
		return 2
	case lead&0xf0 == 0xe0:
		return 3
	case lead&0xf8 == 0xf0:
		return 4
	}
	return 1 // continuation or invalid lead
}

// step returns the width of the code point starting at byte offset i, clipped
// to the end of text.
func step(text []byte, i int) int {
	n := SeqLen(text[i])
	if i+n > len(text) {
		return len(text) - i
	}
	return n
}

// Width returns the byte width of the code point starting at offset i, or 0 if
// i is not inside text.
func Width(text []byte, i int) int {
	if i < 0 || i >= len(text) {
		return 0
	}
	return step(text, i)
}

// ToByte returns the byte offset of the code point with logical index n.
// n == Count(text) yields len(text); larger values are not found.
func ToByte(text []byte, n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	i, j := 0, 0
	for i < len(text) {
		if j == n {
			return i, true
		}
		i += step(text, i)
		j++
	}
	if j == n {
		return len(text), true
	}
	return 0, false
}

// ToLogical returns the logical index of the code point starting at byte
// offset b. Offsets inside a multi-byte sequence are not found;
// b == len(text) yields Count(text).
func ToLogical(text []byte, b int) (int, bool) {
	if b < 0 || b > len(text) {
		return 0, false
	}
	i, j := 0, 0
	for i < len(text) {
		if i == b {
			return j, true
		}
		i += step(text, i)
		j++
	}
	if i == b {
		return j, true
	}
	return 0, false
}

// Range translates the logical range [start,end) into a byte range.
func Range(text []byte, start, end int) (int, int, bool) {
	if start < 0 || end < start {
		return 0, 0, false
	}
	bs, ok := ToByte(text, start)
	if !ok {
		return 0, 0, false
	}
	be := bs
	for j := start; j < end; j++ {
		if be >= len(text) {
			return 0, 0, false
		}
		be += step(text, be)
	}
	return bs, be, true
}

// Count returns the number of code points in text.
func Count(text []byte) int {
	n := 0
	for i := 0; i < len(text); i += step(text, i) {
		n++
	}
	return n
}

// IsCharBoundary reports whether byte offset b starts a code point or is the
// end of text.
func IsCharBoundary(text []byte, b int) bool {
	_, ok := ToLogical(text, b)
	return ok
}

// Floor returns the largest code-point boundary ≤ b.
func Floor(text []byte, b int) int {
	if b >= len(text) {
		return len(text)
	}
	last := 0
	for i := 0; i < len(text); i += step(text, i) {
		if i > b {
			break
		}
		last = i
	}
	return last
}

// LastStart returns the byte offset of the last code point in text, or -1 if
// text is empty.
func LastStart(text []byte) int {
	last := -1
	for i := 0; i < len(text); i += step(text, i) {
		last = i
	}
	return last
}
