package utf8seq

import (
	"io"

	"github.com/npillmayer/utf8seq/alloc"
)

// Writer lets a sequence be used as an io.Writer. Every write appends to the
// sequence.
type Writer struct {
	u *Unmanaged
	a alloc.Allocator
}

// Writer returns a writer appending to u, allocating from a.
func (u *Unmanaged) Writer(a alloc.Allocator) *Writer {
	return &Writer{u: u, a: a}
}

// Write appends p. Either all of p is appended or none of it.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.u.Concat(w.a, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString appends s.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Reader returns a reader for the content bytes of u. The reader borrows u and
// must not be used after u has been mutated.
func (u *Unmanaged) Reader() io.Reader {
	return &seqReader{u: u}
}

type seqReader struct {
	u      *Unmanaged
	cursor int
}

func (sr *seqReader) Read(p []byte) (n int, err error) {
	if sr.cursor >= sr.u.size {
		return 0, io.EOF
	}
	n = copy(p, sr.u.buf[sr.cursor:sr.u.size])
	sr.cursor += n
	return n, nil
}
