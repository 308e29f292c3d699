package alloc

// Heap is an allocator backed by the Go heap. Regions are collected by the
// garbage collector, Free just drops the reference.
var Heap Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	if n == 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

func (h heapAllocator) Realloc(old []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	if n == 0 {
		return nil, nil
	}
	if n == len(old) {
		return old, nil
	}
	if n < len(old) && n > cap(old)/2 {
		return old[:n:n], nil
	}
	b, err := h.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(b, old)
	return b, nil
}

func (heapAllocator) Free([]byte) {}
