/*
Package casing maps code points between upper and lower case, beyond ASCII.

The mapping is the simple (one-to-one) case mapping of the Unicode tables
shipped with Go. It does not know about locales, titlecase digraphs are mapped
like any other letter, and special casing rules which change the number of
code points (German ß → SS) are not applied.

Both directions are held in static tables, sorted by source code point and
searched binarily. The tables are built once, on first use.
*/
package casing

import (
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Mapping selects a case direction.
type Mapping int

// Case directions.
const (
	Upper Mapping = iota
	Lower
)

type pair struct {
	from, to rune
}

var (
	buildOnce sync.Once
	tables    [2][]pair
)

func build() {
	for _, tab := range []*unicode.RangeTable{unicode.Lower, unicode.Title} {
		eachRune(tab, func(r rune) {
			if u := unicode.ToUpper(r); u != r {
				tables[Upper] = append(tables[Upper], pair{r, u})
			}
		})
	}
	for _, tab := range []*unicode.RangeTable{unicode.Upper, unicode.Title} {
		eachRune(tab, func(r rune) {
			if l := unicode.ToLower(r); l != r {
				tables[Lower] = append(tables[Lower], pair{r, l})
			}
		})
	}
	for _, t := range tables {
		slices.SortFunc(t, func(a, b pair) int { return int(a.from - b.from) })
	}
}

func eachRune(tab *unicode.RangeTable, f func(rune)) {
	for _, r := range tab.R16 {
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			f(c)
		}
	}
	for _, r := range tab.R32 {
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			f(c)
		}
	}
}

// Entries returns the number of code points with a mapping in direction m.
func (m Mapping) Entries() int {
	buildOnce.Do(build)
	return len(tables[m])
}

// Rune maps a single code point. Code points without a mapping are returned
// unchanged.
func (m Mapping) Rune(r rune) rune {
	if r < utf8.RuneSelf {
		switch {
		case m == Upper && 'a' <= r && r <= 'z':
			return r - 'a' + 'A'
		case m == Lower && 'A' <= r && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}
	buildOnce.Do(build)
	t := tables[m]
	i, found := slices.BinarySearchFunc(t, r, func(p pair, r rune) int { return int(p.from - r) })
	if !found {
		return r
	}
	return t[i].to
}

// Size returns the number of bytes src occupies after mapping.
// Bytes which do not decode are counted as they are.
func (m Mapping) Size(src []byte) int {
	n := 0
	for i := 0; i < len(src); {
		r, w := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && w <= 1 {
			n++
			i++
			continue
		}
		n += utf8.RuneLen(m.Rune(r))
		i += w
	}
	return n
}

// Encode writes the mapped form of src to dst and returns the number of bytes
// written. dst must hold at least Size(src) bytes and must not overlap src.
// Bytes which do not decode are copied unchanged.
func (m Mapping) Encode(dst, src []byte) int {
	n := 0
	for i := 0; i < len(src); {
		r, w := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && w <= 1 {
			dst[n] = src[i]
			n++
			i++
			continue
		}
		n += utf8.EncodeRune(dst[n:], m.Rune(r))
		i += w
	}
	return n
}
