package alloc

import "sync"

// Tracker books every region handed out by the wrapped allocator. It lets
// clients check that each allocation is matched by exactly one release.
type Tracker struct {
	mx     sync.Mutex
	a      Allocator
	live   map[*byte]int
	allocs int
	frees  int
	faults int
}

// Track wraps allocator a with bookkeeping. A nil a means Heap.
func Track(a Allocator) *Tracker {
	if a == nil {
		a = Heap
	}
	return &Tracker{a: a, live: make(map[*byte]int)}
}

func (t *Tracker) Alloc(n int) ([]byte, error) {
	b, err := t.a.Alloc(n)
	if err != nil {
		return nil, err
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	t.book(b)
	return b, nil
}

func (t *Tracker) Realloc(old []byte, n int) ([]byte, error) {
	t.mx.Lock()
	known := t.owns(old)
	t.mx.Unlock()
	if len(old) > 0 && !known {
		t.fault("realloc of foreign region")
		return nil, ErrOutOfMemory
	}
	b, err := t.a.Realloc(old, n)
	if err != nil {
		return nil, err
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	t.unbook(old)
	t.book(b)
	return b, nil
}

func (t *Tracker) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	t.mx.Lock()
	if !t.owns(b) {
		t.mx.Unlock()
		t.fault("free of unknown region (double free?)")
		return
	}
	t.unbook(b)
	t.mx.Unlock()
	t.a.Free(b)
}

func (t *Tracker) owns(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	_, ok := t.live[&b[0]]
	return ok
}

func (t *Tracker) book(b []byte) {
	if len(b) == 0 {
		return
	}
	t.live[&b[0]] = len(b)
	t.allocs++
}

func (t *Tracker) unbook(b []byte) {
	if !t.owns(b) {
		return
	}
	delete(t.live, &b[0])
	t.frees++
}

func (t *Tracker) fault(msg string) {
	t.mx.Lock()
	t.faults++
	t.mx.Unlock()
	tracer().Errorf("alloc: %s", msg)
}

// Allocs returns the number of regions handed out so far.
func (t *Tracker) Allocs() int {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.allocs
}

// Frees returns the number of regions released so far.
func (t *Tracker) Frees() int {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.frees
}

// Outstanding returns the number of regions not yet released.
func (t *Tracker) Outstanding() int {
	t.mx.Lock()
	defer t.mx.Unlock()
	return len(t.live)
}

// LiveBytes returns the total size of all regions not yet released.
func (t *Tracker) LiveBytes() int {
	t.mx.Lock()
	defer t.mx.Unlock()
	n := 0
	for _, l := range t.live {
		n += l
	}
	return n
}

// Faults returns the number of releases of regions which were not live.
func (t *Tracker) Faults() int {
	t.mx.Lock()
	defer t.mx.Unlock()
	return t.faults
}
