/*
Package alloc defines the allocator interface consumed by UTF-8 sequences,
together with a couple of implementations.

Sequences never call make() for their backing buffers directly. Instead they
ask an Allocator, which lets clients decide where bytes come from and gives
tests a way to observe every allocation and release:

	Heap      GC-backed, Free is a no-op (the default)
	Pool      size-classed recycling through sync.Pool
	Limit     wraps an allocator with a live-byte budget
	Track     wraps an allocator and books every allocation and release

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package alloc

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'utf8seq'
func tracer() tracing.Trace {
	return tracing.Select("utf8seq")
}

// ErrOutOfMemory is returned whenever an allocator is unable to hand out
// the requested amount of bytes.
var ErrOutOfMemory = errors.New("alloc: out of memory")

// Allocator hands out byte regions and takes them back.
//
// Alloc returns a region with len == n. Realloc returns a region with len == n,
// holding the first min(len(old), n) bytes of old. If Realloc fails, old is
// still owned by the caller and unchanged. Requests for 0 bytes yield a nil
// region, and Realloc(old, 0) releases old.
//
// Free must be called exactly once for every non-nil region handed out, and only
// with regions this allocator returned.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Realloc(old []byte, n int) ([]byte, error)
	Free(b []byte)
}
