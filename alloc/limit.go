package alloc

// Limited is an allocator with a budget of live bytes. Requests which would
// exceed the budget fail with ErrOutOfMemory.
type Limited struct {
	a      Allocator
	budget int
	live   int
}

// Limit wraps allocator a with a budget of live bytes. A nil a means Heap.
func Limit(a Allocator, budget int) *Limited {
	if a == nil {
		a = Heap
	}
	return &Limited{a: a, budget: budget}
}

// Live returns the number of bytes currently handed out.
func (l *Limited) Live() int {
	return l.live
}

// Budget returns the maximum number of live bytes.
func (l *Limited) Budget() int {
	return l.budget
}

func (l *Limited) Alloc(n int) ([]byte, error) {
	if l.live+n > l.budget {
		tracer().Debugf("alloc: budget of %d bytes exhausted (live=%d, request=%d)", l.budget, l.live, n)
		return nil, ErrOutOfMemory
	}
	b, err := l.a.Alloc(n)
	if err != nil {
		return nil, err
	}
	l.live += len(b)
	return b, nil
}

func (l *Limited) Realloc(old []byte, n int) ([]byte, error) {
	if delta := n - len(old); l.live+delta > l.budget {
		tracer().Debugf("alloc: budget of %d bytes exhausted (live=%d, resize %d→%d)",
			l.budget, l.live, len(old), n)
		return nil, ErrOutOfMemory
	}
	b, err := l.a.Realloc(old, n)
	if err != nil {
		return nil, err
	}
	l.live += len(b) - len(old)
	return b, nil
}

func (l *Limited) Free(b []byte) {
	l.live -= len(b)
	l.a.Free(b)
}
