// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified index and capacity normalization routines for contiguous storage.
// Ensures all edit operations validate positions and counts against the
// current logical length with one shared policy: hard preconditions are
// checked by the caller via the Valid* predicates, soft positions are
// clamped via the Clamp* helpers. Should be used by ALL call sites working
// with element indices or capacity requests.
//
// Example usage:
//
//   if !normalize.ValidIndex(i, a.Len()) { ... }
//   to = normalize.ClampIndex(to, a.Len())
//   capacity = normalize.GrowCapacity(minNeeded)

package normalize

// ValidIndex reports whether i addresses a live element in a sequence of
// length n, i.e. 0 <= i < n.
func ValidIndex(i, n int) bool {
	return i >= 0 && i < n
}

// ValidRange reports whether [at, at+count) lies fully inside [0, n).
// A zero count at any in-bounds position is valid, including at == n.
func ValidRange(at, count, n int) bool {
	return at >= 0 && count >= 0 && at <= n && count <= n-at
}

// ClampIndex normalizes a target position against length n.
// Out-of-range positions, negative ones included, resolve to the last
// valid index. Returns -1 when the sequence is empty.
func ClampIndex(i, n int) int {
	if ValidIndex(i, n) {
		return i
	}
	return n - 1
}

// GrowCapacity converts a minimum element requirement into the capacity to
// reserve: half again the requirement plus a fixed pad, rounded up to a
// multiple of eight elements. Amortizes append sequences to O(1) per
// element while keeping small buffers on predictable sizes.
func GrowCapacity(min int) int {
	if min <= 0 {
		return 0
	}
	grown := (min + min/2 + 8) &^ 7
	if grown < min {
		// Headroom arithmetic overflowed; reserve the bare requirement and
		// let the allocator decide whether it is satisfiable.
		return min
	}
	return grown
}
