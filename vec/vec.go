// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Array is the growable contiguous storage primitive. It owns exactly one
// storage region, tracks a logical length inside a larger capacity, and
// binds a per-type lifecycle strategy at construction. Higher-level ordered
// collections compose it; they never manage raw storage themselves.

package vec

import (
	"github.com/momentics/hioload-vec/api"
	"github.com/momentics/hioload-vec/internal/normalize"
	"github.com/momentics/hioload-vec/pool"
)

// Array is a growable contiguous sequence of T over manually managed
// storage.
//
// Elements live at indices [0, Len()); storage beyond that is dead and is
// never read, returned, or finalized. Arrays are not internally
// synchronized: concurrent mutation requires external coordination (see
// Guarded). An Array must not be copied after first use; transfer ownership
// with SwapWith.
//
// Pointer-free element types without a Drop hook are stored in raw
// allocator regions and relocated by block copy. All other types live on
// the GC heap under per-element move semantics with exactly-once Drop
// finalization. The strategy is fixed per instantiation.
type Array[T any] struct {
	alloc api.Allocator
	life  lifecycle[T]

	// raw is the allocator region backing elems on the trivial path; nil
	// on the managed path, where elems is an ordinary heap slice.
	raw   []byte
	elems []T
	used  int
}

var _ api.Sequence[int] = (*Array[int])(nil)

// New returns an empty array over the process-wide default allocator.
// Storage is allocated lazily on first growth.
func New[T any]() *Array[T] {
	return NewWithAllocator[T](pool.DefaultAllocator())
}

// NewWithAllocator returns an empty array whose raw storage, when the
// element type qualifies for it, comes from alloc. Managed element types
// (pointer-bearing or implementing api.Dropper) always live on the GC heap.
// A nil alloc falls back to the default allocator.
func NewWithAllocator[T any](alloc api.Allocator) *Array[T] {
	if alloc == nil {
		alloc = pool.DefaultAllocator()
	}
	return &Array[T]{alloc: alloc, life: lifecycleFor[T]()}
}

// WithCapacity returns an empty array with storage for exactly n elements
// already reserved.
func WithCapacity[T any](n int) *Array[T] {
	a := New[T]()
	if n > 0 {
		a.SetCapacity(n)
	}
	return a
}

// Len reports the number of live elements.
func (a *Array[T]) Len() int { return a.used }

// Cap reports how many elements fit before the next reallocation.
func (a *Array[T]) Cap() int { return len(a.elems) }

// At returns the element at index i. Panics when i is out of range.
func (a *Array[T]) At(i int) T {
	if !normalize.ValidIndex(i, a.used) {
		panic(badIndex("At", i, a.used))
	}
	return a.elems[i]
}

// AtDefault returns the element at index i, or the zero value of T when i
// is out of range.
func (a *Array[T]) AtDefault(i int) T {
	if !normalize.ValidIndex(i, a.used) {
		var zero T
		return zero
	}
	return a.elems[i]
}

// First returns the first element, or the zero value when empty.
func (a *Array[T]) First() T { return a.AtDefault(0) }

// Last returns the last element, or the zero value when empty.
func (a *Array[T]) Last() T { return a.AtDefault(a.used - 1) }

// Data returns the live elements as one contiguous slice sharing storage
// with the array. The view is valid until the next capacity-changing
// operation and is capacity-capped, so appending to it reallocates instead
// of touching dead storage. Writes through the view bypass lifecycle hooks.
func (a *Array[T]) Data() []T {
	return a.elems[:a.used:a.used]
}

// Set overwrites the element at index i, finalizing the previous value on
// the managed path. Panics when i is out of range.
func (a *Array[T]) Set(i int, v T) {
	if !normalize.ValidIndex(i, a.used) {
		panic(badIndex("Set", i, a.used))
	}
	a.life.replace(a.elems, i, v)
}

// Append adds values at the end, reserving capacity once for the whole
// batch. The array takes ownership of appended values: callers must not
// retain Dropper values they hand over.
func (a *Array[T]) Append(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	a.EnsureCapacity(a.used + n)
	copy(a.elems[a.used:], values)
	a.used += n
	a.validate()
}

// AppendSlice adds the elements of src at the end with one reservation.
func (a *Array[T]) AppendSlice(src []T) {
	a.Append(src...)
}

// AppendFrom adds every element of an arbitrary sequence at the end,
// reserving capacity once up front. Appending an array to itself is
// supported: the reservation happens before any element is read.
func (a *Array[T]) AppendFrom(src api.Sequence[T]) {
	n := src.Len()
	if n == 0 {
		return
	}
	a.EnsureCapacity(a.used + n)
	for i := 0; i < n; i++ {
		a.elems[a.used+i] = src.At(i)
	}
	a.used += n
	a.validate()
}

// Clear destroys all live elements and resets the length to zero. Capacity
// is retained for reuse.
func (a *Array[T]) Clear() {
	a.life.destroy(a.elems, 0, a.used)
	a.used = 0
	a.validate()
}

// Release clears the array and returns its storage region to the
// allocator. Safe on an empty or never-allocated array, and idempotent.
func (a *Array[T]) Release() {
	a.Clear()
	a.releaseStorage()
}

// SwapWith exchanges contents, capacity and allocator binding with other in
// O(1) without relocating elements. This is the ownership transfer for a
// container that must not be copied.
func (a *Array[T]) SwapWith(other *Array[T]) {
	if other == nil || other == a {
		return
	}
	*a, *other = *other, *a
}
