// File: vec/seq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sequence-level operations: iteration, iterator appends, and structural
// equality. Equality compares length first, then elements pairwise with a
// short-circuit on the first mismatch; capacity and allocator binding never
// participate.

package vec

import (
	"iter"

	"github.com/momentics/hioload-vec/api"
)

// All returns an index/value iterator over the live elements. Mutating the
// array during iteration follows the same rules as mutating a slice being
// ranged over: the iteration sees the view captured when it started.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.Data() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a value iterator over the live elements.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Data() {
			if !yield(v) {
				return
			}
		}
	}
}

// AppendSeq adds every value produced by seq at the end. The production
// length is unknown up front, so growth is amortized instead of reserved.
func (a *Array[T]) AppendSeq(seq iter.Seq[T]) {
	for v := range seq {
		a.Append(v)
	}
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil array equals only another nil array.
func Equal[T comparable](a, b *Array[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.used != b.used {
		return false
	}
	for i := 0; i < a.used; i++ {
		if a.elems[i] != b.elems[i] {
			return false
		}
	}
	return true
}

// EqualFunc reports whether a and b hold pairwise equivalent elements under
// eq, in the same order.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.used != b.used {
		return false
	}
	for i := 0; i < a.used; i++ {
		if !eq(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}

// EqualSeq reports whether a holds the same elements, in order, as an
// arbitrary sequence implementation.
func EqualSeq[T comparable](a *Array[T], s api.Sequence[T]) bool {
	if a == nil || s == nil {
		return false
	}
	if a.used != s.Len() {
		return false
	}
	for i := 0; i < a.used; i++ {
		if a.elems[i] != s.At(i) {
			return false
		}
	}
	return true
}
