// File: vec/validate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !vecdebug

package vec

// validate is compiled out unless the vecdebug build tag is set.
func (a *Array[T]) validate() {}
