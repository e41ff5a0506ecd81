// Package pool
// Author: momentics <momentics@gmail.com>
//
// Storage allocators for hioload-vec.
// Implements cache-line-aligned heap allocation, size-classed region
// recycling, and OS-mapped arenas kept outside the garbage-collected heap.
// All primitives are cross-platform (Linux/Windows, heap-only elsewhere)
// and designed for predictable allocation behavior under high churn.
// See heap.go, recycler.go, arena.go for implementation details.
package pool
