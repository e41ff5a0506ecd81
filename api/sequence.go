// Package api
// Author: momentics <momentics@gmail.com>
//
// Read-side sequence contract shared by containers and their consumers.

package api

// Sequence is the minimal read contract over an ordered collection.
// Arrays satisfy it, and any other indexable collection may too; equality
// checks and cross-container appends consume this interface.
type Sequence[T any] interface {
	// Len reports the number of live elements.
	Len() int

	// At returns the element at index i. Implementations panic when i is
	// outside [0, Len()).
	At(i int) T
}
