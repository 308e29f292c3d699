package utf8seq

import (
	"io"
	"iter"

	"github.com/npillmayer/utf8seq/alloc"
	"github.com/npillmayer/utf8seq/index"
)

// Sequence is a growable UTF-8 sequence which stores its allocator.
//
// Methods that take or return indices count code points, not bytes.
// Sequences derived from a sequence (Clone, Substr, SplitToString, …) use the
// same allocator and have to be released on their own.
//
// Performance characteristics:
//
//	Operation        |  Cost
//	-----------------+---------------------
//	Size, Capacity   |  O(1)
//	Concat           |  O(m) amortized
//	Len, CharAt      |  O(n)
//	Insert, Remove   |  O(n)
//	Pop              |  O(n)
//	Split            |  O(n) per block
//	SplitAll         |  O(n·blocks)
//	Replace          |  O(n·m)
type Sequence struct {
	core Unmanaged
	a    alloc.Allocator
}

// New creates an empty sequence. No memory is allocated until content is
// added. A nil allocator selects alloc.Heap.
func New(a alloc.Allocator) *Sequence {
	if a == nil {
		a = alloc.Heap
	}
	return &Sequence{a: a}
}

// NewWithContents creates a sequence holding a copy of contents, in a buffer
// sized to fit exactly.
func NewWithContents(a alloc.Allocator, contents []byte) (*Sequence, error) {
	s := New(a)
	u, err := UnmanagedWithContents(s.a, contents)
	if err != nil {
		return nil, err
	}
	s.core = u
	return s, nil
}

// NewFromString creates a sequence holding a copy of str.
func NewFromString(a alloc.Allocator, str string) (*Sequence, error) {
	return NewWithContents(a, []byte(str))
}

// NewWithCapacity creates an empty sequence with a buffer of n bytes.
func NewWithCapacity(a alloc.Allocator, n int) (*Sequence, error) {
	s := New(a)
	if err := s.core.SetCapacity(s.a, n); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sequence) derive(u Unmanaged) *Sequence {
	return &Sequence{core: u, a: s.a}
}

// Deinit releases the buffer.
func (s *Sequence) Deinit() { s.core.Deinit(s.a) }

// Allocator returns the allocator of s.
func (s *Sequence) Allocator() alloc.Allocator { return s.a }

// Unmanaged moves the content out of s into an Unmanaged, which from now on is
// responsible for releasing it. s is left empty.
func (s *Sequence) Unmanaged() Unmanaged {
	u := s.core
	s.core = Unmanaged{}
	return u
}

// --- Queries ---------------------------------------------------------------

// The following methods delegate to the Unmanaged core; see there for
// documentation.

func (s *Sequence) Capacity() int { return s.core.Capacity() }
func (s *Sequence) Size() int { return s.core.Size() }
func (s *Sequence) Len() int { return s.core.Len() }
func (s *Sequence) IsEmpty() bool { return s.core.IsEmpty() }
func (s *Sequence) Str() []byte { return s.core.Str() }
func (s *Sequence) String() string { return s.core.String() }
func (s *Sequence) Summary() index.Summary { return s.core.Summary() }
func (s *Sequence) Equal(other *Sequence) bool { return s.core.Equal(&other.core) }
func (s *Sequence) CharAt(i int) ([]byte, bool) { return s.core.CharAt(i) }
func (s *Sequence) Find(lit []byte) (int, bool) { return s.core.Find(lit) }
func (s *Sequence) RFind(lit []byte) (int, bool) { return s.core.RFind(lit) }
func (s *Sequence) IncludesLiteral(lit []byte) bool { return s.core.IncludesLiteral(lit) }
func (s *Sequence) StartsWith(lit []byte) bool { return s.core.StartsWith(lit) }
func (s *Sequence) EndsWith(lit []byte) bool { return s.core.EndsWith(lit) }

// IncludesString reports whether the content of other occurs in s.
func (s *Sequence) IncludesString(other *Sequence) bool {
	return s.core.IncludesString(&other.core)
}

// --- Capacity --------------------------------------------------------------

// SetCapacity resizes the buffer, see Unmanaged.SetCapacity.
func (s *Sequence) SetCapacity(n int) error { return s.core.SetCapacity(s.a, n) }

// Truncate shrinks the buffer to fit the content.
func (s *Sequence) Truncate() error { return s.core.Truncate(s.a) }

// --- Mutation --------------------------------------------------------------

func (s *Sequence) Concat(lit []byte) error { return s.core.Concat(s.a, lit) }
func (s *Sequence) ConcatString(str string) error { return s.core.ConcatString(s.a, str) }
func (s *Sequence) Insert(lit []byte, i int) error { return s.core.Insert(s.a, lit, i) }
func (s *Sequence) InsertString(str string, i int) error {
	return s.core.InsertString(s.a, str, i)
}
func (s *Sequence) Pop() ([]byte, bool) { return s.core.Pop() }
func (s *Sequence) Remove(i int) error { return s.core.Remove(i) }
func (s *Sequence) RemoveRange(start, end int) error { return s.core.RemoveRange(start, end) }
func (s *Sequence) Reverse() { s.core.Reverse() }
func (s *Sequence) Repeat(n int) error { return s.core.Repeat(s.a, n) }
func (s *Sequence) TrimStart(whitelist []byte) { s.core.TrimStart(whitelist) }
func (s *Sequence) TrimEnd(whitelist []byte) { s.core.TrimEnd(whitelist) }
func (s *Sequence) Trim(whitelist []byte) { s.core.Trim(whitelist) }
func (s *Sequence) ToLowercase() { s.core.ToLowercase() }
func (s *Sequence) ToUppercase() { s.core.ToUppercase() }
func (s *Sequence) ToCapitalized() { s.core.ToCapitalized() }
func (s *Sequence) ToUnicodeUppercase() error { return s.core.ToUnicodeUppercase(s.a) }
func (s *Sequence) ToUnicodeLowercase() error { return s.core.ToUnicodeLowercase(s.a) }
func (s *Sequence) SetStr(contents []byte) error { return s.core.SetStr(s.a, contents) }
func (s *Sequence) Clear() { s.core.Clear() }

// Replace replaces every occurrence of needle, see Unmanaged.Replace.
func (s *Sequence) Replace(needle, replacement []byte) (bool, error) {
	return s.core.Replace(s.a, needle, replacement)
}

// --- Split & copies --------------------------------------------------------

func (s *Sequence) Split(delims []byte, i int) ([]byte, bool) { return s.core.Split(delims, i) }
func (s *Sequence) SplitAll(delims []byte) [][]byte { return s.core.SplitAll(delims) }

// SplitToString returns block number i as a new sequence.
func (s *Sequence) SplitToString(delims []byte, i int) (*Sequence, bool, error) {
	u, ok, err := s.core.SplitToString(s.a, delims, i)
	if !ok || err != nil {
		return nil, ok, err
	}
	return s.derive(u), true, nil
}

// SplitAllToStrings returns all blocks as new sequences.
func (s *Sequence) SplitAllToStrings(delims []byte) ([]*Sequence, error) {
	us, err := s.core.SplitAllToStrings(s.a, delims)
	return s.deriveAll(us), err
}

// Lines splits the content into lines ("\n" or "\r\n").
func (s *Sequence) Lines() ([]*Sequence, error) {
	us, err := s.core.Lines(s.a)
	return s.deriveAll(us), err
}

func (s *Sequence) deriveAll(us []Unmanaged) []*Sequence {
	if us == nil {
		return nil
	}
	seqs := make([]*Sequence, len(us))
	for i, u := range us {
		seqs[i] = s.derive(u)
	}
	return seqs
}

// Substr returns the code points [start,end) as a new sequence.
func (s *Sequence) Substr(start, end int) (*Sequence, error) {
	u, err := s.core.Substr(s.a, start, end)
	if err != nil {
		return nil, err
	}
	return s.derive(u), nil
}

// Clone returns a deep copy of s.
func (s *Sequence) Clone() (*Sequence, error) {
	u, err := s.core.Clone(s.a)
	if err != nil {
		return nil, err
	}
	return s.derive(u), nil
}

// ToOwned returns a copy of the content, allocated from the sequence's
// allocator. Release it with s.Allocator().Free.
func (s *Sequence) ToOwned() ([]byte, error) { return s.core.ToOwned(s.a) }

// --- Iteration & streams ---------------------------------------------------

func (s *Sequence) Iterator() *Iterator { return s.core.Iterator() }
func (s *Sequence) Chars() iter.Seq[[]byte] { return s.core.Chars() }
func (s *Sequence) Writer() *Writer { return s.core.Writer(s.a) }
func (s *Sequence) Reader() io.Reader { return s.core.Reader() }
