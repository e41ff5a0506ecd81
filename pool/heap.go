// File: pool/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed allocator. Regions come from make([]byte) with the slice
// window shifted so the first byte sits on an api.RegionAlign boundary;
// the garbage collector reclaims regions once freed, so Free only keeps
// the accounting honest.

package pool

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
)

// HeapAllocator allocates zeroed, cache-line-aligned regions from the Go
// heap. The zero value is ready to use.
type HeapAllocator struct {
	allocs atomic.Int64
	frees  atomic.Int64
	inUse  atomic.Int64
}

var _ api.Allocator = (*HeapAllocator)(nil)

// Allocate returns a zeroed region of exactly n bytes.
func (h *HeapAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	h.allocs.Add(1)
	h.inUse.Add(int64(n))
	return alignedRegion(n)
}

// Reallocate resizes b to exactly n bytes, carrying over min(n, len(b))
// bytes. Shrinking reuses the region in place; growing allocates, copies
// and releases the old region.
func (h *HeapAllocator) Reallocate(n int, b []byte) []byte {
	if len(b) == 0 {
		return h.Allocate(n)
	}
	if n <= 0 {
		h.Free(b)
		return nil
	}
	if n <= len(b) {
		h.inUse.Add(int64(n - len(b)))
		return b[:n:n]
	}
	next := h.Allocate(n)
	copy(next, b)
	h.Free(b)
	return next
}

// Free releases a region. The garbage collector reclaims the memory; this
// updates accounting only. Freeing nil is a no-op.
func (h *HeapAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	h.frees.Add(1)
	h.inUse.Add(-int64(len(b)))
}

// Stats reports cumulative accounting.
func (h *HeapAllocator) Stats() api.AllocStats {
	inUse := h.inUse.Load()
	return api.AllocStats{
		TotalAllocs:   h.allocs.Load(),
		TotalFrees:    h.frees.Load(),
		BytesInUse:    inUse,
		BytesReserved: inUse,
	}
}

// alignedRegion over-allocates by one alignment unit and shifts the window
// so byte 0 lands on an api.RegionAlign boundary. Capacity is capped at the
// window so appends through the region cannot silently spill.
func alignedRegion(n int) []byte {
	buf := make([]byte, n+api.RegionAlign)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := int((api.RegionAlign - addr%api.RegionAlign) % api.RegionAlign)
	return buf[shift : shift+n : shift+n]
}
