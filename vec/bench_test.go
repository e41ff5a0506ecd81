// File: vec/bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Performance benchmarks for the storage primitive.

package vec

import (
	"testing"

	"github.com/momentics/hioload-vec/pool"
)

// BenchmarkAppend measures amortized growth on the trivial path.
func BenchmarkAppend(b *testing.B) {
	a := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append(i)
	}
}

// BenchmarkAppendPreallocated measures appends with growth factored out.
func BenchmarkAppendPreallocated(b *testing.B) {
	a := New[int]()
	a.SetCapacity(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append(i)
	}
}

// BenchmarkAppendManaged measures amortized growth on the managed path.
func BenchmarkAppendManaged(b *testing.B) {
	a := New[string]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append("payload")
	}
}

// BenchmarkAppendBatch measures variadic batches against per-element calls.
func BenchmarkAppendBatch(b *testing.B) {
	batch := make([]int, 64)
	a := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.AppendSlice(batch)
		if a.Len() > 1<<20 {
			a.Clear()
		}
	}
}

// BenchmarkInsertFront measures worst-case shifting.
func BenchmarkInsertFront(b *testing.B) {
	a := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Insert(0, i)
		if a.Len() > 1<<16 {
			a.Clear()
		}
	}
}

// BenchmarkRemoveFront measures worst-case removal shifting.
func BenchmarkRemoveFront(b *testing.B) {
	a := New[int]()
	for i := 0; i < 1<<16; i++ {
		a.Append(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if a.Len() == 0 {
			b.StopTimer()
			for j := 0; j < 1<<16; j++ {
				a.Append(j)
			}
			b.StartTimer()
		}
		a.RemoveAt(0)
	}
}

// BenchmarkDataIteration measures the contiguous-view read path.
func BenchmarkDataIteration(b *testing.B) {
	a := New[int]()
	for i := 0; i < 4096; i++ {
		a.Append(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for _, v := range a.Data() {
			sum += v
		}
	}
	_ = sum
}

// BenchmarkValuesIteration measures the iterator read path.
func BenchmarkValuesIteration(b *testing.B) {
	a := New[int]()
	for i := 0; i < 4096; i++ {
		a.Append(i)
	}
	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		for v := range a.Values() {
			sum += v
		}
	}
	_ = sum
}

// BenchmarkClearReuse measures churn with capacity retention.
func BenchmarkClearReuse(b *testing.B) {
	a := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 128; j++ {
			a.Append(j)
		}
		a.Clear()
	}
}

// BenchmarkArenaAppend measures the trivial path over OS-mapped storage.
func BenchmarkArenaAppend(b *testing.B) {
	arena := pool.NewArenaAllocator()
	a := NewWithAllocator[int](arena)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Append(i)
	}
	b.StopTimer()
	a.Release()
}
