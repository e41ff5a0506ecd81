// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocator implementations for testing.

package fake

import (
	"sync"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
)

// CountingAllocator wraps an inner allocator and records every call, so
// tests can assert how storage management behaves (single reservation per
// batch, balanced frees, realloc counts).
type CountingAllocator struct {
	inner api.Allocator

	mu          sync.Mutex
	allocates   int
	reallocates int
	frees       int
	live        map[uintptr]int
}

var _ api.Allocator = (*CountingAllocator)(nil)

// NewCountingAllocator wraps inner; nil wraps a plain heap allocator.
func NewCountingAllocator(inner api.Allocator) *CountingAllocator {
	if inner == nil {
		inner = &poolFreeHeap{}
	}
	return &CountingAllocator{
		inner: inner,
		live:  make(map[uintptr]int),
	}
}

// Allocate delegates and records the region.
func (c *CountingAllocator) Allocate(n int) []byte {
	b := c.inner.Allocate(n)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allocates++
	if len(b) > 0 {
		c.live[base(b)] = len(b)
	}
	return b
}

// Reallocate delegates and re-records the region.
func (c *CountingAllocator) Reallocate(n int, b []byte) []byte {
	next := c.inner.Reallocate(n, b)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reallocates++
	if len(b) > 0 {
		delete(c.live, base(b))
	}
	if len(next) > 0 {
		c.live[base(next)] = len(next)
	}
	return next
}

// Free delegates and forgets the region.
func (c *CountingAllocator) Free(b []byte) {
	c.inner.Free(b)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(b) > 0 {
		c.frees++
		delete(c.live, base(b))
	}
}

// Stats delegates to the inner allocator.
func (c *CountingAllocator) Stats() api.AllocStats {
	return c.inner.Stats()
}

// Allocates reports the number of Allocate calls seen.
func (c *CountingAllocator) Allocates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocates
}

// Reallocates reports the number of Reallocate calls seen.
func (c *CountingAllocator) Reallocates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reallocates
}

// Frees reports the number of Free calls seen.
func (c *CountingAllocator) Frees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frees
}

// LiveRegions reports regions allocated and not yet freed.
func (c *CountingAllocator) LiveRegions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// FailingAllocator serves a fixed number of allocations and then panics,
// modelling storage exhaustion for fatal-path tests.
type FailingAllocator struct {
	Remaining int
	inner     poolFreeHeap
}

var _ api.Allocator = (*FailingAllocator)(nil)

// Allocate serves until the budget runs out.
func (f *FailingAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	if f.Remaining <= 0 {
		panic(api.NewError(api.ErrCodeResourceExhausted, "fake: allocation budget exhausted").
			WithContext("bytes", n))
	}
	f.Remaining--
	return f.inner.Allocate(n)
}

// Reallocate counts against the same budget.
func (f *FailingAllocator) Reallocate(n int, b []byte) []byte {
	if len(b) == 0 {
		return f.Allocate(n)
	}
	if n <= len(b) {
		return b
	}
	next := f.Allocate(n)
	copy(next, b)
	return next
}

// Free is accounting-only.
func (f *FailingAllocator) Free(b []byte) { f.inner.Free(b) }

// Stats delegates to the inner allocator.
func (f *FailingAllocator) Stats() api.AllocStats { return f.inner.Stats() }

// poolFreeHeap is a minimal aligned heap allocator, duplicated here so the
// fake package stays import-free of pool and usable from its tests.
type poolFreeHeap struct {
	allocs int64
	frees  int64
}

func (h *poolFreeHeap) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	h.allocs++
	buf := make([]byte, n+api.RegionAlign)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := int((api.RegionAlign - addr%api.RegionAlign) % api.RegionAlign)
	return buf[shift : shift+n : shift+n]
}

func (h *poolFreeHeap) Reallocate(n int, b []byte) []byte {
	if len(b) == 0 {
		return h.Allocate(n)
	}
	if n <= 0 {
		h.Free(b)
		return nil
	}
	if n <= len(b) {
		return b[:n:n]
	}
	next := h.Allocate(n)
	copy(next, b)
	h.Free(b)
	return next
}

func (h *poolFreeHeap) Free(b []byte) {
	if len(b) > 0 {
		h.frees++
	}
}

func (h *poolFreeHeap) Stats() api.AllocStats {
	return api.AllocStats{TotalAllocs: h.allocs, TotalFrees: h.frees}
}

func base(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}
