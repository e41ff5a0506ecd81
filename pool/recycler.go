// File: pool/recycler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Size-classed region recycler. Freed regions park on per-class FIFO free
// lists and satisfy later allocations of the same class without touching
// the backing allocator. Lists are depth-bounded so churn bursts cannot pin
// memory forever. Recycled regions keep their previous contents; containers
// never read storage they have not written.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-vec/api"
)

// Predefined (power-of-two-ish) region size classes (bytes).
// This table can be tuned per deployment through tuning.Profile.
var defaultSizeClasses = []int{
	64,
	256,
	1 * 1024,
	4 * 1024,
	16 * 1024,
	64 * 1024,
	256 * 1024,
	1 * 1024 * 1024,
}

// defaultListDepth bounds each per-class free list.
const defaultListDepth = 4096

// DefaultSizeClasses returns a copy of the built-in class table.
func DefaultSizeClasses() []int {
	out := make([]int, len(defaultSizeClasses))
	copy(out, defaultSizeClasses)
	return out
}

// DefaultListDepth returns the built-in free-list bound.
func DefaultListDepth() int { return defaultListDepth }

// Recycler is an api.Allocator that recycles regions by size class,
// deferring to a backing allocator on free-list misses and for requests
// beyond the largest class.
type Recycler struct {
	backing api.Allocator
	classes []int
	depth   int

	mu    sync.Mutex
	lists map[int]*queue.Queue

	allocs atomic.Int64
	frees  atomic.Int64
	inUse  atomic.Int64
	parked atomic.Int64
	hits   atomic.Int64
	misses atomic.Int64
}

var _ api.Allocator = (*Recycler)(nil)

// NewRecycler builds a recycler over backing with the default class table
// and list depth. A nil backing gets a fresh HeapAllocator.
func NewRecycler(backing api.Allocator) *Recycler {
	return NewRecyclerWith(backing, nil, 0)
}

// NewRecyclerWith builds a recycler with an explicit class table and list
// depth, as loaded from a tuning profile. The class table must be sorted
// ascending; nil or empty falls back to the default table, and a
// non-positive depth falls back to the default depth.
func NewRecyclerWith(backing api.Allocator, classes []int, depth int) *Recycler {
	if backing == nil {
		backing = &HeapAllocator{}
	}
	if len(classes) == 0 {
		classes = defaultSizeClasses
	}
	if depth <= 0 {
		depth = defaultListDepth
	}
	return &Recycler{
		backing: backing,
		classes: classes,
		depth:   depth,
		lists:   make(map[int]*queue.Queue, len(classes)),
	}
}

// classFor returns the smallest class >= n, or ok=false when n exceeds the
// largest class and must pass through to the backing allocator untouched.
func (r *Recycler) classFor(n int) (int, bool) {
	for _, c := range r.classes {
		if n <= c {
			return c, true
		}
	}
	return 0, false
}

// Allocate returns a region of at least n bytes, reusing a parked region of
// the matching class when one is available.
func (r *Recycler) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	r.allocs.Add(1)
	class, ok := r.classFor(n)
	if !ok {
		r.misses.Add(1)
		r.inUse.Add(int64(n))
		return r.backing.Allocate(n)
	}
	r.mu.Lock()
	if q := r.lists[class]; q != nil && q.Length() > 0 {
		b := q.Remove().([]byte)
		r.mu.Unlock()
		r.hits.Add(1)
		r.parked.Add(-int64(class))
		r.inUse.Add(int64(class))
		return b
	}
	r.mu.Unlock()
	r.misses.Add(1)
	r.inUse.Add(int64(class))
	// Allocate the full class so the region recycles on Free.
	return r.backing.Allocate(class)
}

// Reallocate resizes b, reusing it in place when it already fits. Regions
// keep their class length so they reclassify correctly on Free.
func (r *Recycler) Reallocate(n int, b []byte) []byte {
	if len(b) == 0 {
		return r.Allocate(n)
	}
	if n <= 0 {
		r.Free(b)
		return nil
	}
	if n <= len(b) {
		return b
	}
	next := r.Allocate(n)
	copy(next, b)
	r.Free(b)
	return next
}

// Free parks class-sized regions on their free list, bounded by the
// configured depth; everything else returns to the backing allocator.
func (r *Recycler) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	r.frees.Add(1)
	r.inUse.Add(-int64(len(b)))
	class, ok := r.classFor(len(b))
	if !ok || len(b) != class {
		r.backing.Free(b)
		return
	}
	r.mu.Lock()
	q := r.lists[class]
	if q == nil {
		q = queue.New()
		r.lists[class] = q
	}
	if q.Length() < r.depth {
		q.Add(b)
		r.mu.Unlock()
		r.parked.Add(int64(class))
		return
	}
	r.mu.Unlock()
	r.backing.Free(b)
}

// Drain releases every parked region to the backing allocator.
func (r *Recycler) Drain() {
	r.mu.Lock()
	drained := make([][]byte, 0)
	for _, q := range r.lists {
		for q.Length() > 0 {
			drained = append(drained, q.Remove().([]byte))
		}
	}
	r.mu.Unlock()
	for _, b := range drained {
		r.parked.Add(-int64(len(b)))
		r.backing.Free(b)
	}
}

// Stats reports accounting as seen through this allocator. BytesReserved
// includes parked regions still held on free lists.
func (r *Recycler) Stats() api.AllocStats {
	inUse := r.inUse.Load()
	return api.AllocStats{
		TotalAllocs:   r.allocs.Load(),
		TotalFrees:    r.frees.Load(),
		BytesInUse:    inUse,
		BytesReserved: inUse + r.parked.Load(),
	}
}

// HitRate reports the fraction of allocations served from free lists.
func (r *Recycler) HitRate() float64 {
	hits := r.hits.Load()
	total := hits + r.misses.Load()
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
