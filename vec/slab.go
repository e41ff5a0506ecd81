// File: vec/slab.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity management. One owned storage region per Array, reallocated
// through the bound api.Allocator on the trivial path and through the GC
// heap on the managed path. Every capacity change relocates the live prefix
// and invalidates previously obtained views and element addresses.

package vec

import (
	"math"
	"unsafe"

	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/normalize"
)

// EnsureCapacity grows storage so at least min elements fit without further
// reallocation. Requests at or below the current capacity are no-ops. Growth
// reserves headroom beyond min (see normalize.GrowCapacity), so append
// sequences stay amortized O(1).
func (a *Array[T]) EnsureCapacity(min int) {
	if min <= len(a.elems) {
		return
	}
	a.setCapacity(normalize.GrowCapacity(min))
}

// SetCapacity reallocates storage to exactly n elements. Panics when n is
// less than the current length: capacity changes never destroy live
// elements. SetCapacity(0) on an empty array releases the region entirely.
func (a *Array[T]) SetCapacity(n int) {
	if n < a.used {
		panic(badCapacity(n, a.used))
	}
	if n == len(a.elems) {
		return
	}
	a.setCapacity(n)
}

// ShrinkTo reduces capacity to at most max, never below the current length.
// Requests at or above the current capacity are no-ops.
func (a *Array[T]) ShrinkTo(max int) {
	if max < a.used {
		max = a.used
	}
	if max < len(a.elems) {
		a.setCapacity(max)
	}
}

// Compact trims capacity to the current length, releasing the region when
// the array is empty.
func (a *Array[T]) Compact() {
	a.SetCapacity(a.used)
}

// setCapacity performs the reallocation. n must already respect used.
func (a *Array[T]) setCapacity(n int) {
	if n == 0 {
		a.releaseStorage()
		return
	}
	if !a.life.trivial() {
		next := make([]T, n)
		a.life.relocate(next, a.elems, a.used)
		a.elems = next
		a.validate()
		return
	}
	size := a.regionSize(n)
	if a.raw == nil {
		a.raw = a.alloc.Allocate(size)
	} else {
		a.raw = a.alloc.Reallocate(size, a.raw)
	}
	a.elems = viewRegion[T](a.raw, n)
	a.validate()
}

// releaseStorage drops the region. Live elements must already be destroyed.
func (a *Array[T]) releaseStorage() {
	if a.life.trivial() && a.raw != nil {
		a.alloc.Free(a.raw)
		a.raw = nil
	}
	a.elems = nil
	a.validate()
}

// regionSize converts an element capacity into a byte request, rejecting
// requests that cannot be addressed.
func (a *Array[T]) regionSize(n int) int {
	elemSize := int(unsafe.Sizeof(*new(T)))
	if n > math.MaxInt/elemSize {
		panic(api.NewError(api.ErrCodeResourceExhausted, "vec: capacity overflows addressable storage").
			WithContext("elements", n).
			WithContext("elemSize", elemSize))
	}
	return n * elemSize
}

// viewRegion reinterprets the leading n*sizeof(T) bytes of an allocator
// region as an element slice. Callers guarantee T is pointer-free (trivial
// path only) and the region is at least that long; api.RegionAlign covers
// the alignment of every Go base type.
func viewRegion[T any](raw []byte, n int) []T {
	if n == 0 || len(raw) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), n)
}
