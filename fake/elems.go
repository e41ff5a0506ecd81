// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-vec/api"

// DropCounter is an element type with an observable destructor. Each Drop
// increments the shared counter, so tests can assert exactly-once
// finalization across removals, overwrites and teardown.
type DropCounter struct {
	ID    int
	Drops *int
}

var _ api.Dropper = (*DropCounter)(nil)

// Drop records one finalization.
func (d *DropCounter) Drop() {
	if d.Drops != nil {
		*d.Drops++
	}
}

// SliceSequence adapts a plain slice to the api.Sequence contract, standing
// in for foreign collection types in equality and append tests.
type SliceSequence[T any] []T

var _ api.Sequence[int] = SliceSequence[int]{}

// Len reports the slice length.
func (s SliceSequence[T]) Len() int { return len(s) }

// At returns the element at index i.
func (s SliceSequence[T]) At(i int) T { return s[i] }
