package pool

import (
	"sync"

	"github.com/momentics/hioload-vec/api"
)

var (
	defaultOnce  sync.Once
	defaultAlloc *Recycler
)

// DefaultRecycler returns a process-wide recycler so all arrays share one
// set of free lists instead of fragmenting allocations.
func DefaultRecycler() *Recycler {
	defaultOnce.Do(func() {
		defaultAlloc = NewRecycler(&HeapAllocator{})
	})
	return defaultAlloc
}

// DefaultAllocator is the allocator arrays bind when none is supplied.
func DefaultAllocator() api.Allocator {
	return DefaultRecycler()
}
