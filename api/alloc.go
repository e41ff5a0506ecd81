// File: api/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocator contract for raw storage regions backing contiguous containers.
//
// Regions may be heap-backed, recycled from size-classed free lists, or
// mapped from the OS (hugepages, VirtualAlloc). All regions are plain byte
// slices; containers impose their own element layout on top.

package api

// Allocator manages raw storage regions for contiguous containers.
//
// Returned regions are at least n bytes long and aligned to RegionAlign
// bytes so that any Go base type can be laid out at offset 0. Fresh regions
// are zeroed; recycling allocators may return regions with residual
// contents, which containers never read before writing.
type Allocator interface {
	// Allocate obtains a region of at least n bytes.
	// n <= 0 returns nil. Allocation failure panics: callers treat
	// storage exhaustion as fatal.
	Allocate(n int) []byte

	// Reallocate obtains a region of at least n bytes carrying over
	// min(n, len(b)) bytes from b, then releases b. The returned region
	// may alias b when the allocator resized in place.
	Reallocate(n int, b []byte) []byte

	// Free releases a region previously returned by Allocate or
	// Reallocate. Freeing nil is a no-op.
	Free(b []byte)

	// Stats reports cumulative allocation accounting.
	Stats() AllocStats
}

// RegionAlign is the minimum alignment, in bytes, of every region returned
// by an Allocator. One cache line covers the alignment of all Go base types.
const RegionAlign = 64

// AllocStats aggregates allocator accounting for observability.
type AllocStats struct {
	TotalAllocs   int64
	TotalFrees    int64
	BytesInUse    int64
	BytesReserved int64
}
