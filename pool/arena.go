// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// OS-mapped arena allocator. Regions come straight from the kernel (mmap on
// Linux, VirtualAlloc on Windows) and stay entirely outside the garbage
// collected heap, so array storage never contributes to GC scan work.
// Only pointer-free element types may live here; the vec package enforces
// that through its storage strategy selection.
//
// Mapping failures fall back to the heap allocator with a logged warning,
// so exhaustion surfaces only when the heap itself gives out.

package pool

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"go.uber.org/zap"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/control"
)

// ArenaAllocator maps page-granular regions directly from the OS.
type ArenaAllocator struct {
	huge     bool
	fallback api.Allocator

	mu     sync.Mutex
	mapped map[uintptr][]byte // region base -> full mapping

	allocs   atomic.Int64
	frees    atomic.Int64
	inUse    atomic.Int64
	reserved atomic.Int64
}

var _ api.Allocator = (*ArenaAllocator)(nil)

// NewArenaAllocator builds an arena over standard pages with heap fallback.
func NewArenaAllocator() *ArenaAllocator {
	return &ArenaAllocator{
		fallback: &HeapAllocator{},
		mapped:   make(map[uintptr][]byte),
	}
}

// NewHugePageArena builds an arena that requests huge pages (2 MiB on
// Linux, large pages on Windows). Hosts without huge page reservations
// serve every request through the fallback path.
func NewHugePageArena() *ArenaAllocator {
	a := NewArenaAllocator()
	a.huge = true
	return a
}

// Allocate maps a region of at least n bytes, rounded up to page size.
func (a *ArenaAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	page := osPageSize(a.huge)
	length := ((n + page - 1) / page) * page
	data, err := osMap(length, a.huge)
	if err != nil {
		control.Log().Warn("arena mapping failed, using heap",
			zap.Int("bytes", length),
			zap.Bool("huge", a.huge),
			zap.Error(err))
		return a.fallback.Allocate(n)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	a.mu.Lock()
	a.mapped[base] = data
	a.mu.Unlock()
	a.allocs.Add(1)
	a.inUse.Add(int64(n))
	a.reserved.Add(int64(length))
	return data[:n:n]
}

// Reallocate grows a region, remapping in place when the kernel supports it
// (mremap on Linux) and falling back to map-copy-unmap everywhere else.
func (a *ArenaAllocator) Reallocate(n int, b []byte) []byte {
	if len(b) == 0 {
		return a.Allocate(n)
	}
	if n <= 0 {
		a.Free(b)
		return nil
	}
	if n <= len(b) {
		return b
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a.mu.Lock()
	full, mapped := a.mapped[base]
	a.mu.Unlock()
	if !mapped {
		return a.fallback.Reallocate(n, b)
	}
	if n <= len(full) {
		// The page tail of the mapping already covers the request.
		a.inUse.Add(int64(n - len(b)))
		return full[:n:n]
	}
	page := osPageSize(a.huge)
	length := ((n + page - 1) / page) * page
	if next, err := osRemap(full, length); err == nil {
		a.mu.Lock()
		delete(a.mapped, base)
		a.mapped[uintptr(unsafe.Pointer(unsafe.SliceData(next)))] = next
		a.mu.Unlock()
		a.inUse.Add(int64(n - len(b)))
		a.reserved.Add(int64(length - len(full)))
		return next[:n:n]
	}
	next := a.Allocate(n)
	copy(next, b)
	a.Free(b)
	return next
}

// Free unmaps a region. Regions served by the fallback path are routed back
// to it.
func (a *ArenaAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a.mu.Lock()
	full, ok := a.mapped[base]
	if ok {
		delete(a.mapped, base)
	}
	a.mu.Unlock()
	if !ok {
		a.fallback.Free(b)
		return
	}
	a.frees.Add(1)
	a.inUse.Add(-int64(len(b)))
	a.reserved.Add(-int64(len(full)))
	if err := osUnmap(full); err != nil {
		control.Log().Warn("arena unmap failed",
			zap.Int("bytes", len(full)),
			zap.Error(err))
	}
}

// Stats reports accounting for mapped regions plus the fallback allocator.
func (a *ArenaAllocator) Stats() api.AllocStats {
	fb := a.fallback.Stats()
	return api.AllocStats{
		TotalAllocs:   a.allocs.Load() + fb.TotalAllocs,
		TotalFrees:    a.frees.Load() + fb.TotalFrees,
		BytesInUse:    a.inUse.Load() + fb.BytesInUse,
		BytesReserved: a.reserved.Load() + fb.BytesReserved,
	}
}

// Close unmaps every region still held. Arrays backed by this arena must
// be released first.
func (a *ArenaAllocator) Close() {
	a.mu.Lock()
	regions := make([][]byte, 0, len(a.mapped))
	for _, full := range a.mapped {
		regions = append(regions, full)
	}
	a.mapped = make(map[uintptr][]byte)
	a.mu.Unlock()
	for _, full := range regions {
		a.frees.Add(1)
		a.reserved.Add(-int64(len(full)))
		if err := osUnmap(full); err != nil {
			control.Log().Warn("arena unmap failed",
				zap.Int("bytes", len(full)),
				zap.Error(err))
		}
	}
}
