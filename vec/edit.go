// File: vec/edit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Positional edit algorithms. All shifts touch only the sub-range between
// the edit position and the end of the live prefix; untouched elements keep
// their relative order. Hard precondition violations panic, soft positions
// clamp or no-op per the normalize policy.

package vec

import (
	"fmt"

	"github.com/momentics/hioload-vec/internal/normalize"
)

// Insert places v at position at, shifting later elements one slot right.
// Positions outside [0, Len()) append at the end instead.
func (a *Array[T]) Insert(at int, v T) {
	a.InsertN(at, v, 1)
}

// InsertN places n copies of v at position at. Panics on negative n; n == 0
// is a no-op. Positions outside [0, Len()) append at the end instead.
func (a *Array[T]) InsertN(at int, v T, n int) {
	if n < 0 {
		panic(badNegCount("InsertN", n))
	}
	if n == 0 {
		return
	}
	at = a.openGap(at, n)
	for i := at; i < at+n; i++ {
		a.elems[i] = v
	}
	a.validate()
}

// InsertSlice places the elements of src at position at with one
// reservation and one shift. Positions outside [0, Len()) append at the
// end instead.
func (a *Array[T]) InsertSlice(at int, src []T) {
	n := len(src)
	if n == 0 {
		return
	}
	at = a.openGap(at, n)
	copy(a.elems[at:at+n], src)
	a.validate()
}

// openGap normalizes the insert position, reserves storage for n more
// elements and opens a hole of n slots, returning the position. The hole
// contains no live elements when it returns.
func (a *Array[T]) openGap(at, n int) int {
	if !normalize.ValidIndex(at, a.used) {
		at = a.used
	}
	a.EnsureCapacity(a.used + n)
	a.life.shift(a.elems, at+n, at, a.used-at)
	a.used += n
	return at
}

// RemoveRange destroys the count elements starting at position at and
// shifts survivors left, preserving their order. Panics when the range does
// not lie fully inside the live prefix or count is negative; count == 0 is
// a no-op.
func (a *Array[T]) RemoveRange(at, count int) {
	if !normalize.ValidRange(at, count, a.used) {
		panic(badRange("RemoveRange", at, count, a.used))
	}
	if count == 0 {
		return
	}
	// Destroy first: survivors then slide into finalized slots, and the
	// managed shift clears everything it vacates.
	a.life.destroy(a.elems, at, count)
	a.life.shift(a.elems, at, at+count, a.used-at-count)
	a.used -= count
	a.validate()
}

// RemoveAt removes the single element at position at. Panics when at is out
// of range.
func (a *Array[T]) RemoveAt(at int) {
	a.RemoveRange(at, 1)
}

// Move relocates the element at from to position to, sliding the elements
// between them by one slot. A to outside [0, Len()) clamps to the last
// index; an invalid from is a no-op.
func (a *Array[T]) Move(from, to int) {
	if !normalize.ValidIndex(from, a.used) {
		return
	}
	to = normalize.ClampIndex(to, a.used)
	if to == from {
		return
	}
	tmp := a.elems[from]
	if to < from {
		a.life.shift(a.elems, to+1, to, from-to)
	} else {
		a.life.shift(a.elems, from, from+1, to-from)
	}
	a.elems[to] = tmp
	a.validate()
}

// Swap exchanges the elements at i and j in place. A no-op unless both
// indices are valid.
func (a *Array[T]) Swap(i, j int) {
	if !normalize.ValidIndex(i, a.used) || !normalize.ValidIndex(j, a.used) {
		return
	}
	a.elems[i], a.elems[j] = a.elems[j], a.elems[i]
	a.validate()
}

func badIndex(op string, i, n int) string {
	return fmt.Sprintf("vec: %s: index %d out of range [0, %d)", op, i, n)
}

func badNegCount(op string, n int) string {
	return fmt.Sprintf("vec: %s: negative count %d", op, n)
}

func badRange(op string, at, count, n int) string {
	return fmt.Sprintf("vec: %s: range [%d, %d) out of range [0, %d)", op, at, at+count, n)
}

func badCapacity(n, used int) string {
	return fmt.Sprintf("vec: SetCapacity: capacity %d below length %d", n, used)
}
