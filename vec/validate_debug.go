// File: vec/validate_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deep invariant validation, enabled with `-tags vecdebug`. Runs after
// every mutation, so keep it out of production builds.

//go:build vecdebug

package vec

import "fmt"

// validate asserts the structural invariants relating length, capacity and
// storage binding.
func (a *Array[T]) validate() {
	if a.used < 0 || a.used > len(a.elems) {
		panic(fmt.Sprintf("vec: invariant violation: length %d outside [0, %d]", a.used, len(a.elems)))
	}
	if a.life.trivial() {
		if len(a.elems) > 0 && a.raw == nil {
			panic("vec: invariant violation: element view without backing region")
		}
	} else if a.raw != nil {
		panic("vec: invariant violation: managed path holds a raw region")
	}
}
