package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/utf8seq"
	"github.com/npillmayer/utf8seq/alloc"
)

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// FragmentSize returns the number of bytes to read at once for a file of the
// given size.
func FragmentSize(size int64) int {
	switch {
	case size < 64:
		return 64
	case size < 1024:
		return 256
	case size < tenKb:
		return 1024
	case size < hundredKb:
		return twoKb
	case size < oneMb:
		return sixKb
	}
	return 4 * sixKb
}

// Progress is published to subscribers of a Loader after every fragment.
type Progress struct {
	Path   string
	Loaded int64 // bytes appended so far
	Total  int64 // file size at the time of opening
}

// Loader reads a text file into a sequence.
type Loader struct {
	path string
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for progress messages
	a    alloc.Allocator
	frag int
}

// Open opens an OS file for loading, checking for error conditions. The
// sequence created by Load will allocate from a.
func Open(a alloc.Allocator, name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		a:    a,
		frag: FragmentSize(fi.Size()),
	}, nil
}

// Subscribe returns a channel which receives Progress messages while the file
// is loaded. The channel is closed when loading has finished. Messages are
// dropped if the channel is full.
func (l *Loader) Subscribe(capacity uint) (<-chan interface{}, bool) {
	return l.cast.Sub(context.Background(), capacity)
}

// Size returns the file size at the time of opening.
func (l *Loader) Size() int64 {
	return l.info.Size()
}

// Load reads the complete file into a new sequence and closes the file.
// If ctx is cancelled, loading stops between fragments and ctx.Err() is
// returned. A Loader can be used for one Load only.
func (l *Loader) Load(ctx context.Context) (*utf8seq.Sequence, error) {
	defer l.file.Close()
	defer l.cast.Close()
	s, err := utf8seq.NewWithCapacity(l.a, int(l.info.Size()))
	if err != nil {
		return nil, err
	}
	if err = l.readAll(ctx, s); err != nil {
		tracer().Errorf("textfile: loading %s: %v", l.path, err)
		s.Deinit()
		return nil, err
	}
	tracer().Debugf("textfile: loaded %s, %d bytes", l.path, s.Size())
	return s, nil
}

func (l *Loader) readAll(ctx context.Context, s *utf8seq.Sequence) error {
	buf := make([]byte, l.frag+utf8.UTFMax)
	carry := 0 // bytes of an incomplete code point at the start of buf
	var loaded int64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := l.file.Read(buf[carry : carry+l.frag])
		if err != nil && err != io.EOF {
			return fmt.Errorf("textfile: error loading fragment of %s: %w", l.path, err)
		}
		chunk := buf[:carry+n]
		cut := completeRunes(chunk)
		if !utf8.Valid(chunk[:cut]) {
			return fmt.Errorf("%w: %s near offset %d", ErrInvalidUTF8, l.path, loaded)
		}
		if err := s.Concat(chunk[:cut]); err != nil {
			return err
		}
		loaded += int64(cut)
		l.cast.TryPub(Progress{Path: l.path, Loaded: loaded, Total: l.info.Size()})
		carry = copy(buf, chunk[cut:])
		if err == io.EOF || n == 0 {
			if carry > 0 {
				return fmt.Errorf("%w: %s ends inside a code point", ErrInvalidUTF8, l.path)
			}
			return nil
		}
	}
}

// completeRunes returns the length of the prefix of b which does not end in an
// incomplete code point.
func completeRunes(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return i
			}
			break
		}
	}
	return len(b)
}

// Load reads a file, which must be a UTF-8 text file, into a new sequence
// allocating from a.
func Load(a alloc.Allocator, name string) (*utf8seq.Sequence, error) {
	l, err := Open(a, name)
	if err != nil {
		return nil, err
	}
	return l.Load(context.Background())
}
