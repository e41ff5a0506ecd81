// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for storage-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-vec/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// CollectAllocator publishes the current accounting of an allocator under
// the given name prefix.
func (mr *MetricsRegistry) CollectAllocator(name string, a api.Allocator) {
	s := a.Stats()
	mr.Set(name+".total_allocs", s.TotalAllocs)
	mr.Set(name+".total_frees", s.TotalFrees)
	mr.Set(name+".bytes_in_use", s.BytesInUse)
	mr.Set(name+".bytes_reserved", s.BytesReserved)
}

var (
	metricsOnce    sync.Once
	defaultMetrics *MetricsRegistry
)

// DefaultMetrics returns a process-wide registry so all components publish
// into one place.
func DefaultMetrics() *MetricsRegistry {
	metricsOnce.Do(func() {
		defaultMetrics = NewMetricsRegistry()
	})
	return defaultMetrics
}
