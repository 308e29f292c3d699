package utf8seq

import (
	"bytes"

	"github.com/npillmayer/utf8seq/alloc"
	"github.com/npillmayer/utf8seq/index"
)

// Find returns the logical index of the first occurrence of lit.
// An empty lit or an empty sequence never yields a match.
func (u *Unmanaged) Find(lit []byte) (int, bool) {
	text := u.Str()
	if len(text) == 0 || len(lit) == 0 {
		return 0, false
	}
	at := bytes.Index(text, lit)
	if at < 0 {
		return 0, false
	}
	return index.ToLogical(text, at)
}

// RFind returns the logical index of the last occurrence of lit.
func (u *Unmanaged) RFind(lit []byte) (int, bool) {
	text := u.Str()
	if len(text) == 0 || len(lit) == 0 {
		return 0, false
	}
	at := bytes.LastIndex(text, lit)
	if at < 0 {
		return 0, false
	}
	return index.ToLogical(text, at)
}

// IncludesLiteral reports whether lit occurs in the sequence. Emptiness is
// never contained: an empty lit or an empty sequence yield false.
func (u *Unmanaged) IncludesLiteral(lit []byte) bool {
	if u.size == 0 || len(lit) == 0 {
		return false
	}
	return bytes.Contains(u.Str(), lit)
}

// IncludesString reports whether the content of other occurs in u.
func (u *Unmanaged) IncludesString(other *Unmanaged) bool {
	return u.IncludesLiteral(other.Str())
}

// StartsWith reports whether the content starts with lit.
func (u *Unmanaged) StartsWith(lit []byte) bool {
	return bytes.HasPrefix(u.Str(), lit)
}

// EndsWith reports whether the content ends with lit.
func (u *Unmanaged) EndsWith(lit []byte) bool {
	return bytes.HasSuffix(u.Str(), lit)
}

// CharAt returns the code point at logical index i.
func (u *Unmanaged) CharAt(i int) ([]byte, bool) {
	text := u.Str()
	at, ok := index.ToByte(text, i)
	if !ok || at == len(text) {
		return nil, false
	}
	return text[at : at+index.Width(text, at)], true
}

// --- Split -----------------------------------------------------------------

// Split returns block number i of the content, where blocks are separated by
// delims. The trailing block after the last delimiter counts as a block, even
// if it is empty.
//
// The content is scanned code point by code point, and a code point is a
// delimiter only if its byte width equals len(delims) and its bytes equal
// delims. Consequently delims should be a single code point; a delimiter made
// of several code points never matches.
func (u *Unmanaged) Split(delims []byte, i int) ([]byte, bool) {
	text := u.Str()
	if len(text) == 0 || i < 0 {
		return nil, false
	}
	block, start := 0, 0
	for pos := 0; pos < len(text); {
		w := index.Width(text, pos)
		if w == len(delims) && bytes.Equal(delims, text[pos:pos+w]) {
			if block == i {
				return text[start:pos], true
			}
			start = pos + w
			block++
		}
		pos += w
	}
	if block == i {
		return text[start:], true
	}
	return nil, false
}

// SplitAll returns all blocks of the content, separated by delims.
// See Split for how delimiters are matched.
func (u *Unmanaged) SplitAll(delims []byte) [][]byte {
	var blocks [][]byte
	for i := 0; ; i++ {
		b, ok := u.Split(delims, i)
		if !ok {
			return blocks
		}
		blocks = append(blocks, b)
	}
}

// SplitToString returns block number i as a new sequence.
func (u *Unmanaged) SplitToString(a alloc.Allocator, delims []byte, i int) (Unmanaged, bool, error) {
	b, ok := u.Split(delims, i)
	if !ok {
		return Unmanaged{}, false, nil
	}
	s, err := UnmanagedWithContents(a, b)
	return s, err == nil, err
}

// SplitAllToStrings returns all blocks as new sequences. If the allocator
// fails, sequences created so far are released.
func (u *Unmanaged) SplitAllToStrings(a alloc.Allocator, delims []byte) ([]Unmanaged, error) {
	blocks := u.SplitAll(delims)
	seqs := make([]Unmanaged, 0, len(blocks))
	for _, b := range blocks {
		s, err := UnmanagedWithContents(a, b)
		if err != nil {
			for i := range seqs {
				seqs[i].Deinit(a)
			}
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// Lines splits the content into lines, accepting both "\n" and "\r\n" as line
// endings. Every line is a new sequence.
func (u *Unmanaged) Lines(a alloc.Allocator) ([]Unmanaged, error) {
	c, err := u.Clone(a)
	if err != nil {
		return nil, err
	}
	defer c.Deinit(a)
	if _, err = c.Replace(a, []byte("\r\n"), []byte("\n")); err != nil {
		return nil, err
	}
	return c.SplitAllToStrings(a, []byte("\n"))
}

// --- Copies ----------------------------------------------------------------

// Substr returns the code points [start,end) as a new sequence. It fails with
// ErrInvalidRange if end < start or end > Len().
func (u *Unmanaged) Substr(a alloc.Allocator, start, end int) (Unmanaged, error) {
	text := u.Str()
	if start < 0 || end < start {
		return Unmanaged{}, ErrInvalidRange
	}
	bs, be, ok := index.Range(text, start, end)
	if !ok {
		return Unmanaged{}, ErrInvalidRange
	}
	return UnmanagedWithContents(a, text[bs:be])
}

// Clone returns a deep copy with a buffer of its own.
func (u *Unmanaged) Clone(a alloc.Allocator) (Unmanaged, error) {
	return UnmanagedWithContents(a, u.Str())
}

// ToOwned returns a copy of the content in a region allocated by a. The caller
// owns the region and has to release it with a.Free. If the sequence has never
// been allocated, ToOwned returns nil.
func (u *Unmanaged) ToOwned(a alloc.Allocator) ([]byte, error) {
	if u.buf == nil {
		return nil, nil
	}
	if u.size == 0 {
		return []byte{}, nil
	}
	b, err := a.Alloc(u.size)
	if err != nil {
		return nil, err
	}
	copy(b, u.Str())
	return b, nil
}

// --- Replace ---------------------------------------------------------------

// Replace replaces every non-overlapping occurrence of needle by replacement.
// The content is rebuilt in a fresh buffer of exactly the resulting size, even
// if needle does not occur. Replace reports whether anything was replaced.
// An empty needle replaces nothing.
func (u *Unmanaged) Replace(a alloc.Allocator, needle, replacement []byte) (bool, error) {
	if u.buf == nil || len(needle) == 0 {
		return false, nil
	}
	text := u.Str()
	count := bytes.Count(text, needle)
	size := len(text) + count*(len(replacement)-len(needle))
	b, err := a.Alloc(size)
	if err != nil {
		tracer().Errorf("utf8seq: replace needs %d bytes: %v", size, err)
		return false, err
	}
	w := 0
	for rest := text; ; {
		at := bytes.Index(rest, needle)
		if at < 0 {
			copy(b[w:], rest)
			break
		}
		w += copy(b[w:], rest[:at])
		w += copy(b[w:], replacement)
		rest = rest[at+len(needle):]
	}
	a.Free(u.buf)
	u.buf = b
	u.size = size
	tracer().Debugf("utf8seq: replaced %d occurrences of %q", count, needle)
	return count > 0, nil
}
