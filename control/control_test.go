// control/control_test.go
// Author: momentics <momentics@gmail.com>

package control_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/momentics/hioload-vec/control"
	"github.com/momentics/hioload-vec/pool"
)

func TestMetricsRegistrySetAndSnapshot(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Set("arrays.live", 3)
	mr.Set("arrays.live", 4)

	snap := mr.GetSnapshot()
	assert.Equal(t, 4, snap["arrays.live"])

	// Snapshots are copies.
	snap["arrays.live"] = 99
	assert.Equal(t, 4, mr.GetSnapshot()["arrays.live"])
}

func TestCollectAllocatorPublishesStats(t *testing.T) {
	h := &pool.HeapAllocator{}
	b := h.Allocate(256)

	mr := control.NewMetricsRegistry()
	mr.CollectAllocator("heap", h)

	snap := mr.GetSnapshot()
	assert.Equal(t, int64(1), snap["heap.total_allocs"])
	assert.Equal(t, int64(256), snap["heap.bytes_in_use"])

	h.Free(b)
	mr.CollectAllocator("heap", h)
	assert.Equal(t, int64(0), mr.GetSnapshot()["heap.bytes_in_use"])
}

func TestDefaultMetricsIsSingleton(t *testing.T) {
	assert.Same(t, control.DefaultMetrics(), control.DefaultMetrics())
}

func TestDebugProbesDumpState(t *testing.T) {
	dp := control.NewDebugProbes()
	dp.RegisterProbe("len", func() any { return 42 })
	dp.RegisterProbe("cap", func() any { return 64 })

	state := dp.DumpState()
	require.Len(t, state, 2)
	assert.Equal(t, 42, state["len"])
	assert.Equal(t, 64, state["cap"])
}

func TestLogStateUsesInstalledLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	control.SetLogger(zap.New(core))
	defer control.SetLogger(nil)

	dp := control.NewDebugProbes()
	dp.RegisterProbe("live", func() any { return 7 })
	dp.LogState()

	entries := logs.FilterMessage("probe").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "live", entries[0].ContextMap()["name"])
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	control.SetLogger(nil)
	require.NotNil(t, control.Log())
	control.Log().Info("must not panic")
}
