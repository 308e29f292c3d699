package alloc

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 4  // smallest pooled region is 16 bytes
	maxClassShift = 20 // largest pooled region is 1 MB
)

// Pool recycles regions in power-of-two size classes. Regions larger than the
// biggest class are served from the heap and not recycled.
//
// A Pool is safe for concurrent use. The zero value is not usable, call NewPool.
type Pool struct {
	classes [maxClassShift - minClassShift + 1]sync.Pool
}

// NewPool creates an empty region pool.
func NewPool() *Pool {
	return &Pool{}
}

// sizeClass returns the class index for a region of n bytes, or -1 if n is
// too large to be pooled.
func sizeClass(n int) int {
	if n <= 1<<minClassShift {
		return 0
	}
	shift := bits.Len(uint(n - 1))
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

func classSize(c int) int {
	return 1 << (c + minClassShift)
}

// Alloc returns a zeroed region of n bytes.
func (p *Pool) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	if n == 0 {
		return nil, nil
	}
	c := sizeClass(n)
	if c < 0 {
		return make([]byte, n), nil
	}
	if v := p.classes[c].Get(); v != nil {
		b := (*(v.(*[]byte)))[:n]
		clear(b)
		return b, nil
	}
	return make([]byte, n, classSize(c)), nil
}

// Realloc resizes a region, staying in place as long as the size class does
// not change.
func (p *Pool) Realloc(old []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	if n == 0 {
		p.Free(old)
		return nil, nil
	}
	if c := sizeClass(n); old != nil && c >= 0 && cap(old) == classSize(c) {
		if n > len(old) {
			b := old[:n]
			clear(b[len(old):])
			return b, nil
		}
		return old[:n], nil
	}
	b, err := p.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	p.Free(old)
	return b, nil
}

// Free puts a region back into its size class. Regions which do not match a
// class exactly are left to the garbage collector.
func (p *Pool) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	c := sizeClass(cap(b))
	if c < 0 || classSize(c) != cap(b) {
		return
	}
	b = b[:cap(b)]
	p.classes[c].Put(&b)
}
