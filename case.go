package utf8seq

import (
	"github.com/npillmayer/utf8seq/alloc"
	"github.com/npillmayer/utf8seq/casing"
)

// ToLowercase converts ASCII letters to lower case. All other bytes stay
// untouched; ASCII bytes never occur inside multi-byte sequences.
func (u *Unmanaged) ToLowercase() {
	for i, c := range u.buf[:u.size] {
		if 'A' <= c && c <= 'Z' {
			u.buf[i] = c + ('a' - 'A')
		}
	}
}

// ToUppercase converts ASCII letters to upper case.
func (u *Unmanaged) ToUppercase() {
	for i, c := range u.buf[:u.size] {
		if 'a' <= c && c <= 'z' {
			u.buf[i] = c - ('a' - 'A')
		}
	}
}

// ToCapitalized upper-cases the first byte of every word, if it is an ASCII
// letter. Words start at the beginning of the content and after whitespace.
// Nothing is ever lower-cased.
func (u *Unmanaged) ToCapitalized() {
	newWord := true
	for i, c := range u.buf[:u.size] {
		if isSpace(c) {
			newWord = true
			continue
		}
		if newWord && 'a' <= c && c <= 'z' {
			u.buf[i] = c - ('a' - 'A')
		}
		newWord = false
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// ToUnicodeUppercase converts every code point with a simple upper-case mapping,
// not just ASCII. The byte width of a code point may change with its case
// (ı → I), so the content is rebuilt in a fresh buffer.
func (u *Unmanaged) ToUnicodeUppercase(a alloc.Allocator) error {
	return u.remap(a, casing.Upper)
}

// ToUnicodeLowercase converts every code point with a simple lower-case mapping.
func (u *Unmanaged) ToUnicodeLowercase(a alloc.Allocator) error {
	return u.remap(a, casing.Lower)
}

func (u *Unmanaged) remap(a alloc.Allocator, m casing.Mapping) error {
	if u.size == 0 {
		return nil
	}
	text := u.Str()
	size := m.Size(text)
	b, err := a.Alloc(size)
	if err != nil {
		return err
	}
	m.Encode(b, text)
	a.Free(u.buf)
	u.buf = b
	u.size = size
	return nil
}
