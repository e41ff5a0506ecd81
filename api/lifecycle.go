// File: api/lifecycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element lifecycle hooks for container-managed values.

package api

// Dropper is implemented by element types owning external resources.
//
// Containers invoke Drop exactly once when an element is logically
// destroyed: removal, overwrite, clear, or storage release. Relocation
// inside a container (growth, shifting, swaps) never triggers Drop.
//
// Implementing Dropper routes the element type onto the managed storage
// path regardless of its memory layout.
type Dropper interface {
	Drop()
}
