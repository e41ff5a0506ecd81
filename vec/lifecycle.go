// File: vec/lifecycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element lifecycle strategies. Every Array instantiation binds one of two
// strategies at construction, fixed for the lifetime of the type:
//
//   - trivialLife: element representation carries no Go pointers and no
//     destructor hook. Relocation is a block copy and destruction is free,
//     so storage can live in raw allocator regions outside GC scan range.
//   - managedLife: element representation carries pointers or implements
//     api.Dropper. Storage stays on the GC heap, every relocation clears
//     the vacated slot so a logical element is referenced by at most one
//     retained slot, and destruction runs the Drop hook exactly once.
//
// Byte-relocating pointer-bearing values through raw regions would hide
// references from the garbage collector; byte-relocating Dropper values
// would duplicate ownership. The classification below is therefore a
// correctness boundary, not a tuning knob.

package vec

import (
	"reflect"

	"github.com/momentics/hioload-vec/api"
)

// lifecycle is the per-type storage strategy. Implementations operate on the
// element view owned by Array; they never reallocate it.
type lifecycle[T any] interface {
	// relocate moves the live prefix src[:used] into dst during a storage
	// change. Source slots are not reused afterwards.
	relocate(dst, src []T, used int)

	// shift moves n elements from srcAt to dstAt within elems. Ranges may
	// overlap; vacated slots are cleared on the managed path.
	shift(elems []T, dstAt, srcAt, n int)

	// destroy finalizes and clears the n elements starting at `at`.
	destroy(elems []T, at, n int)

	// replace overwrites slot i with v, finalizing the previous element.
	replace(elems []T, i int, v T)

	// trivial reports whether elements are byte-relocatable.
	trivial() bool
}

// trivialLife relocates by block copy. Vacated slots keep stale bytes; dead
// storage is never read, and pointer-free representations give the garbage
// collector nothing to trace.
type trivialLife[T any] struct{}

func (trivialLife[T]) relocate(dst, src []T, used int) {
	copy(dst, src[:used])
}

func (trivialLife[T]) shift(elems []T, dstAt, srcAt, n int) {
	if n <= 0 || dstAt == srcAt {
		return
	}
	copy(elems[dstAt:dstAt+n], elems[srcAt:srcAt+n])
}

func (trivialLife[T]) destroy(_ []T, _, _ int) {}

func (trivialLife[T]) replace(elems []T, i int, v T) {
	elems[i] = v
}

func (trivialLife[T]) trivial() bool { return true }

// managedLife relocates element by element, clearing each vacated slot so
// the retained storage holds at most one live reference per logical element.
type managedLife[T any] struct {
	// droppable is set when *T implements api.Dropper; checked once at
	// construction instead of per element.
	droppable bool
}

func (managedLife[T]) relocate(dst, src []T, used int) {
	var zero T
	for i := 0; i < used; i++ {
		dst[i] = src[i]
		src[i] = zero
	}
}

func (managedLife[T]) shift(elems []T, dstAt, srcAt, n int) {
	var zero T
	if n <= 0 || dstAt == srcAt {
		return
	}
	if dstAt < srcAt {
		for i := 0; i < n; i++ {
			elems[dstAt+i] = elems[srcAt+i]
			elems[srcAt+i] = zero
		}
		return
	}
	// Back to front so overlapping targets are vacated before being
	// rewritten.
	for i := n - 1; i >= 0; i-- {
		elems[dstAt+i] = elems[srcAt+i]
		elems[srcAt+i] = zero
	}
}

func (m managedLife[T]) destroy(elems []T, at, n int) {
	var zero T
	for i := at; i < at+n; i++ {
		if m.droppable {
			m.drop(&elems[i])
		}
		elems[i] = zero
	}
}

func (m managedLife[T]) replace(elems []T, i int, v T) {
	if m.droppable {
		m.drop(&elems[i])
	}
	elems[i] = v
}

// drop runs the element's Drop hook. The slot pointer form serves value
// types with pointer-receiver hooks; the value form serves pointer and
// interface element types. A nil interface element has no hook to run.
func (managedLife[T]) drop(p *T) {
	if d, ok := any(p).(api.Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(*p).(api.Dropper); ok {
		d.Drop()
	}
}

func (managedLife[T]) trivial() bool { return false }

// lifecycleFor classifies T once and returns its strategy.
func lifecycleFor[T any]() lifecycle[T] {
	if trivialType[T]() {
		return trivialLife[T]{}
	}
	return managedLife[T]{droppable: droppableType[T]()}
}

var dropperType = reflect.TypeOf((*api.Dropper)(nil)).Elem()

// droppableType reports whether elements of T expose a Drop hook: T itself
// implements api.Dropper (pointer, interface and value-receiver types), or
// *T does (value types with a pointer-receiver hook).
func droppableType[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.Implements(dropperType) || reflect.PointerTo(t).Implements(dropperType)
}

// trivialType reports whether T may live in raw storage: pointer-free
// representation, no Drop hook, and a nonzero size. Zero-size types take
// the managed path so capacity math never divides by zero.
func trivialType[T any]() bool {
	if droppableType[T]() {
		return false
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Size() == 0 {
		return false
	}
	return !typeHasPointers(t)
}

// typeHasPointers walks the representation of t looking for anything the
// garbage collector would need to trace.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, channels, funcs, strings, interfaces,
		// unsafe.Pointer.
		return true
	}
}
