// Package vec
// Author: momentics <momentics@gmail.com>
//
// Growable contiguous storage primitive for ordered collections.
// Implements manual capacity management over pluggable allocators, per-type
// storage strategy selection (byte-relocatable vs. lifecycle-managed
// elements), and minimal-move positional edits.
// All primitives are cross-platform and designed for predictable memory
// behavior in high-throughput pipelines.
// See slab.go, lifecycle.go, edit.go for implementation details.
package vec
