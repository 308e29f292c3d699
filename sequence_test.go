package utf8seq

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/utf8seq/alloc"
)

func fromString(t *testing.T, a alloc.Allocator, s string) *Sequence {
	t.Helper()
	seq, err := NewFromString(a, s)
	if err != nil {
		t.Fatalf("cannot create sequence from %q: %v", s, err)
	}
	return seq
}

func TestBasicBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "utf8seq")
	defer teardown()
	//
	s := New(alloc.Heap)
	defer s.Deinit()
	if s.Capacity() != 0 || s.Size() != 0 {
		t.Fatalf("new sequence should be unallocated, capacity=%d", s.Capacity())
	}
	if err := s.ConcatString("🔥 Hello!"); err != nil {
		t.Fatal(err)
	}
	c, ok := s.Pop()
	if !ok || string(c) != "!" {
		t.Fatalf("Pop returned %q/%v, want \"!\"", c, ok)
	}
	if err := s.ConcatString(", World 🔥"); err != nil {
		t.Fatal(err)
	}
	if s.String() != "🔥 Hello, World 🔥" {
		t.Errorf("unexpected content %q", s)
	}
	if s.Len() != 16 || s.Size() != 22 {
		t.Errorf("len=%d size=%d, want 16/22", s.Len(), s.Size())
	}
}

func TestRoundTrip(t *testing.T) {
	for _, input := range []string{"", "a", "Grüße", "A占💯Hell", "🔥🔥🔥", "\r\n"} {
		s := fromString(t, nil, input)
		if string(s.Str()) != input {
			t.Errorf("round trip of %q gave %q", input, s.Str())
		}
		if s.Capacity() != len(input) {
			t.Errorf("expected exact capacity %d, have %d", len(input), s.Capacity())
		}
		if s.Len() != utf8.RuneCountInString(input) || s.Len() > s.Size() {
			t.Errorf("len %d of %q inconsistent", s.Len(), input)
		}
		if (s.Len() == s.Size()) != s.Summary().IsASCII() {
			t.Errorf("length equals size must mean ASCII for %q", input)
		}
	}
}

func TestGrowthPolicy(t *testing.T) {
	s := New(nil)
	s.ConcatString("abc")
	if s.Capacity() != 6 {
		t.Errorf("expected capacity 6 after first append, have %d", s.Capacity())
	}
	s.ConcatString("def")
	if s.Capacity() != 6 {
		t.Errorf("expected no growth when content fits, have %d", s.Capacity())
	}
	s.ConcatString("g")
	if s.Capacity() != 14 {
		t.Errorf("expected capacity 14, have %d", s.Capacity())
	}
	if err := s.Truncate(); err != nil || s.Capacity() != 7 {
		t.Errorf("Truncate: capacity=%d err=%v", s.Capacity(), err)
	}
}

func TestSetCapacityClampsAtCharBoundary(t *testing.T) {
	s := fromString(t, nil, "a🔥b")
	if err := s.SetCapacity(3); err != nil {
		t.Fatal(err)
	}
	if s.Capacity() != 3 || s.String() != "a" {
		t.Errorf("capacity=%d content=%q, want 3/\"a\"", s.Capacity(), s)
	}
	if err := s.SetCapacity(64); err != nil {
		t.Fatal(err)
	}
	if s.Capacity() != 64 || s.String() != "a" {
		t.Errorf("growing lost content: %q", s)
	}
	if err := s.SetCapacity(0); err != nil || s.Size() != 0 || s.Capacity() != 0 {
		t.Errorf("SetCapacity(0): size=%d cap=%d err=%v", s.Size(), s.Capacity(), err)
	}
}

func TestMultiByteInsert(t *testing.T) {
	s := fromString(t, nil, "A占💯Hell")
	if s.Len() != 7 {
		t.Fatalf("expected 7 code points, have %d", s.Len())
	}
	if err := s.InsertString("🔥", 1); err != nil {
		t.Fatal(err)
	}
	if s.String() != "A🔥占💯Hell" {
		t.Errorf("unexpected content %q", s)
	}
	c, ok := s.CharAt(1)
	if !ok || string(c) != "🔥" {
		t.Errorf("CharAt(1) = %q/%v", c, ok)
	}
	if _, ok = s.CharAt(8); ok {
		t.Errorf("CharAt beyond end must not be found")
	}
	if err := s.InsertString("!", 100); err != nil || !s.EndsWith([]byte("Hell!")) {
		t.Errorf("insert beyond end should append, have %q", s)
	}
	if err := s.InsertString("^", 0); err != nil || s.String() != "^A🔥占💯Hell!" {
		t.Errorf("insert at start: %q", s)
	}
}

func TestInsertRemoveInverse(t *testing.T) {
	orig := "Grüße 占💯!"
	lit := "🔥x占"
	for i := 0; i <= utf8.RuneCountInString(orig); i++ {
		s := fromString(t, nil, orig)
		if err := s.InsertString(lit, i); err != nil {
			t.Fatal(err)
		}
		if err := s.RemoveRange(i, i+utf8.RuneCountInString(lit)); err != nil {
			t.Fatal(err)
		}
		if s.String() != orig {
			t.Errorf("insert/remove at %d gave %q", i, s)
		}
	}
}

func TestRemove(t *testing.T) {
	s := fromString(t, nil, "a😀בc")
	if err := s.Remove(1); err != nil {
		t.Fatal(err)
	}
	if s.String() != "aבc" {
		t.Errorf("Remove(1) gave %q", s)
	}
	if err := s.Remove(3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestOutOfRangeRemoval(t *testing.T) {
	s := fromString(t, nil, "A占💯Hell")
	err := s.RemoveRange(0, s.Len()+1)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if s.String() != "A占💯Hell" {
		t.Errorf("content changed: %q", s)
	}
	if err = s.RemoveRange(3, 2); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for end < start, got %v", err)
	}
	if err = s.RemoveRange(0, s.Len()); err != nil || !s.IsEmpty() {
		t.Errorf("removing everything: %q, %v", s, err)
	}
}

func TestPopEmpty(t *testing.T) {
	s := New(nil)
	if _, ok := s.Pop(); ok {
		t.Errorf("Pop of empty sequence must report nothing")
	}
	s.ConcatString("占")
	c, ok := s.Pop()
	if !ok || string(c) != "占" || !s.IsEmpty() {
		t.Errorf("Pop = %q/%v, remaining %q", c, ok, s)
	}
}

func TestReverse(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"", ""},
		{"abc", "cba"},
		{"A占💯Hell", "lleH💯占A"},
		{"🔥 Hello, World 🔥", "🔥 dlroW ,olleH 🔥"},
	} {
		s := fromString(t, nil, tc.in)
		s.Reverse()
		if s.String() != tc.want {
			t.Errorf("reverse(%q) = %q, want %q", tc.in, s, tc.want)
		}
		if !utf8.Valid(s.Str()) {
			t.Errorf("reverse(%q) produced invalid UTF-8", tc.in)
		}
		s.Reverse()
		if s.String() != tc.in {
			t.Errorf("reverse is not an involution for %q: %q", tc.in, s)
		}
	}
}

func TestRepeat(t *testing.T) {
	for n := 0; n < 4; n++ {
		s := fromString(t, nil, "💯ab")
		if err := s.Repeat(n); err != nil {
			t.Fatal(err)
		}
		if want := strings.Repeat("💯ab", n+1); s.String() != want {
			t.Errorf("Repeat(%d) = %q, want %q", n, s, want)
		}
	}
	empty := New(nil)
	if err := empty.Repeat(3); err != nil || !empty.IsEmpty() {
		t.Errorf("repeating nothing should stay empty")
	}
}

func TestTrim(t *testing.T) {
	s := fromString(t, nil, "      💯Hel")
	s.TrimStart(Whitespace)
	if s.String() != "💯Hel" {
		t.Errorf("TrimStart gave %q", s)
	}
	s = fromString(t, nil, "\t Hel💯 \r\n")
	s.TrimEnd(Whitespace)
	if s.String() != "\t Hel💯" {
		t.Errorf("TrimEnd gave %q", s)
	}
	s = fromString(t, nil, "xx💯xx")
	s.Trim([]byte{'x'})
	if s.String() != "💯" {
		t.Errorf("Trim gave %q", s)
	}
	s = fromString(t, nil, "   ")
	s.Trim(Whitespace)
	if !s.IsEmpty() {
		t.Errorf("trimming blanks should leave nothing, have %q", s)
	}
}

func TestSetStrAndClear(t *testing.T) {
	s := fromString(t, nil, "hello")
	capacity := s.Capacity()
	s.Clear()
	if !s.IsEmpty() || s.Capacity() != capacity {
		t.Errorf("Clear: size=%d capacity=%d", s.Size(), s.Capacity())
	}
	if err := s.SetStr([]byte("占💯")); err != nil || s.String() != "占💯" {
		t.Errorf("SetStr: %q, %v", s, err)
	}
	if err := s.SetStr(s.Str()[3:]); err != nil || s.String() != "💯" {
		t.Errorf("SetStr from own view: %q, %v", s, err)
	}
}

func TestSelfAppend(t *testing.T) {
	s := fromString(t, nil, "ab占")
	if err := s.Concat(s.Str()); err != nil {
		t.Fatal(err)
	}
	if s.String() != "ab占ab占" {
		t.Errorf("appending own view: %q", s)
	}
	s.Clear()
	s.ConcatString("xyz")
	s.SetCapacity(100)
	if err := s.Insert(s.Str(), 1); err != nil || s.String() != "xxyzyz" {
		t.Errorf("inserting own view in place: %q, %v", s, err)
	}
}

func TestOutOfMemoryLeavesContentIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "utf8seq")
	defer teardown()
	//
	lim := alloc.Limit(alloc.Heap, 8)
	s := New(lim)
	if err := s.ConcatString("abc"); err != nil {
		t.Fatal(err)
	}
	err := s.ConcatString("defg")
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if s.String() != "abc" || s.Capacity() != 6 {
		t.Errorf("failed growth changed the sequence: %q cap=%d", s, s.Capacity())
	}
	if _, err = s.Clone(); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("expected clone to fail, got %v", err)
	}
	if _, err = NewFromString(lim, "123456789"); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("expected construction to fail, got %v", err)
	}
	if _, err = s.Replace([]byte("b"), []byte("BBBBBB")); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("expected replace to fail, got %v", err)
	}
	if s.String() != "abc" {
		t.Errorf("failed replace changed content: %q", s)
	}
}

func TestAllocationsAreReleased(t *testing.T) {
	tr := alloc.Track(alloc.NewPool())
	s := New(tr)
	for i := 0; i < 20; i++ {
		s.ConcatString("💯hello ")
	}
	c, err := s.Clone()
	if err != nil {
		t.Fatal(err)
	}
	sub, err := s.Substr(2, 9)
	if err != nil {
		t.Fatal(err)
	}
	parts, err := s.SplitAllToStrings([]byte(" "))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = s.Replace([]byte("hello"), []byte("hi")); err != nil {
		t.Fatal(err)
	}
	if err = s.ToUnicodeUppercase(); err != nil {
		t.Fatal(err)
	}
	owned, err := s.ToOwned()
	if err != nil {
		t.Fatal(err)
	}
	tr.Free(owned)
	for _, p := range parts {
		p.Deinit()
	}
	sub.Deinit()
	c.Deinit()
	s.Deinit()
	if tr.Outstanding() != 0 || tr.Allocs() != tr.Frees() || tr.Faults() != 0 {
		t.Errorf("unbalanced: allocs=%d frees=%d outstanding=%d faults=%d",
			tr.Allocs(), tr.Frees(), tr.Outstanding(), tr.Faults())
	}
}

func TestUnmanagedVariant(t *testing.T) {
	a := alloc.Heap
	var u Unmanaged
	defer u.Deinit(a)
	if err := u.ConcatString(a, "hello"); err != nil {
		t.Fatal(err)
	}
	if err := u.InsertString(a, "💯", 0); err != nil {
		t.Fatal(err)
	}
	u.ToUppercase()
	if u.String() != "💯HELLO" {
		t.Errorf("unexpected content %q", u.String())
	}
	s := u.Managed(a)
	if !u.IsEmpty() || s.String() != "💯HELLO" {
		t.Errorf("ownership did not move to managed sequence")
	}
	back := s.Unmanaged()
	if back.String() != "💯HELLO" || !s.IsEmpty() {
		t.Errorf("ownership did not move back")
	}
	back.Deinit(a)
}
