// File: vec/guard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scoped-acquisition wrapper. The storage primitive itself is not
// internally synchronized; callers that share one array across goroutines
// compose it with a guard. The locker is injectable so several structures
// can share a single critical-section domain.

package vec

import "sync"

// Guarded serializes access to an Array through a sync.Locker.
type Guarded[T any] struct {
	mu sync.Locker
	a  *Array[T]
}

// NewGuarded wraps a under mu. A nil locker gets a private mutex; a nil
// array gets a fresh one over the default allocator.
func NewGuarded[T any](mu sync.Locker, a *Array[T]) *Guarded[T] {
	if mu == nil {
		mu = &sync.Mutex{}
	}
	if a == nil {
		a = New[T]()
	}
	return &Guarded[T]{mu: mu, a: a}
}

// Do runs fn with the guard held, for multi-step edits that must observe
// and mutate atomically. fn must not retain the array past its return.
func (g *Guarded[T]) Do(fn func(*Array[T])) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.a)
}

// Len reports the number of live elements under the guard.
func (g *Guarded[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.Len()
}

// At returns the element at index i under the guard.
func (g *Guarded[T]) At(i int) T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.At(i)
}

// AtDefault returns the element at index i, or the zero value when i is out
// of range, under the guard.
func (g *Guarded[T]) AtDefault(i int) T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.a.AtDefault(i)
}

// Append adds values at the end under the guard.
func (g *Guarded[T]) Append(values ...T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Append(values...)
}

// Insert places v at position at under the guard.
func (g *Guarded[T]) Insert(at int, v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Insert(at, v)
}

// RemoveRange removes count elements starting at position at under the
// guard.
func (g *Guarded[T]) RemoveRange(at, count int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.RemoveRange(at, count)
}

// Set overwrites the element at index i under the guard.
func (g *Guarded[T]) Set(i int, v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Set(i, v)
}

// Swap exchanges the elements at i and j under the guard.
func (g *Guarded[T]) Swap(i, j int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Swap(i, j)
}

// Move relocates the element at from to position to under the guard.
func (g *Guarded[T]) Move(from, to int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Move(from, to)
}

// Clear destroys all live elements under the guard.
func (g *Guarded[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Clear()
}

// Release clears the array and returns its storage under the guard.
func (g *Guarded[T]) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.a.Release()
}

// Snapshot copies the live elements out under the guard.
func (g *Guarded[T]) Snapshot() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]T, g.a.Len())
	copy(out, g.a.Data())
	return out
}
