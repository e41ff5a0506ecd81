// File: vec/lifecycle_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-vec/fake"
)

// valueDrop exercises Drop hooks declared on the value receiver.
type valueDrop struct{ hits *int }

func (v valueDrop) Drop() {
	if v.hits != nil {
		*v.hits++
	}
}

func TestTypeClassification(t *testing.T) {
	// Byte-relocatable representations.
	assert.True(t, trivialType[int]())
	assert.True(t, trivialType[uint8]())
	assert.True(t, trivialType[float64]())
	assert.True(t, trivialType[complex128]())
	assert.True(t, trivialType[uintptr]())
	assert.True(t, trivialType[[4]int]())
	assert.True(t, trivialType[struct{ A, B int }]())
	assert.True(t, trivialType[struct {
		X float32
		Y [2]uint64
	}]())

	// Pointer-bearing representations take the managed path.
	assert.False(t, trivialType[string]())
	assert.False(t, trivialType[*int]())
	assert.False(t, trivialType[[]byte]())
	assert.False(t, trivialType[map[string]int]())
	assert.False(t, trivialType[chan int]())
	assert.False(t, trivialType[func()]())
	assert.False(t, trivialType[any]())
	assert.False(t, trivialType[struct{ S string }]())
	assert.False(t, trivialType[[3]*int]())

	// Drop hooks force the managed path regardless of layout.
	assert.False(t, trivialType[fake.DropCounter]())
	assert.True(t, droppableType[fake.DropCounter]())
	assert.True(t, droppableType[valueDrop]())

	// Zero-size types are managed so capacity math stays divisor-free.
	assert.False(t, trivialType[struct{}]())
	assert.False(t, trivialType[[0]string]())
}

func TestStorageBinding(t *testing.T) {
	tr := New[int]()
	tr.Append(1)
	assert.NotNil(t, tr.raw)
	assert.True(t, tr.life.trivial())
	tr.Release()
	assert.Nil(t, tr.raw)

	mg := New[string]()
	mg.Append("x")
	assert.Nil(t, mg.raw)
	assert.False(t, mg.life.trivial())
}

func counters(n int, hits *int) []fake.DropCounter {
	out := make([]fake.DropCounter, n)
	for i := range out {
		out[i] = fake.DropCounter{ID: i, Drops: hits}
	}
	return out
}

func TestDropExactlyOnceOnRemove(t *testing.T) {
	hits := 0
	a := New[fake.DropCounter]()
	a.AppendSlice(counters(5, &hits))

	a.RemoveRange(1, 2)
	assert.Equal(t, 2, hits)

	a.RemoveAt(0)
	assert.Equal(t, 3, hits)

	a.Release()
	assert.Equal(t, 5, hits)
}

func TestDropExactlyOnceOnClear(t *testing.T) {
	hits := 0
	a := New[fake.DropCounter]()
	a.AppendSlice(counters(4, &hits))

	a.Clear()
	assert.Equal(t, 4, hits)

	// Nothing left to finalize.
	a.Clear()
	a.Release()
	assert.Equal(t, 4, hits)
}

func TestDropOnOverwrite(t *testing.T) {
	hits := 0
	a := New[fake.DropCounter]()
	a.AppendSlice(counters(3, &hits))

	other := 0
	a.Set(1, fake.DropCounter{ID: 99, Drops: &other})
	assert.Equal(t, 1, hits)
	assert.Equal(t, 0, other)

	a.Release()
	assert.Equal(t, 3, hits)
	assert.Equal(t, 1, other)
}

func TestRelocationNeverDrops(t *testing.T) {
	hits := 0
	a := New[fake.DropCounter]()
	a.AppendSlice(counters(3, &hits))

	// Growth reallocation.
	a.EnsureCapacity(1000)
	assert.Equal(t, 0, hits)

	// Shrink reallocation.
	a.Compact()
	assert.Equal(t, 0, hits)

	// Positional shifts.
	a.Insert(1, fake.DropCounter{ID: 50, Drops: &hits})
	a.Move(0, 3)
	a.Swap(1, 2)
	assert.Equal(t, 0, hits)

	b := New[fake.DropCounter]()
	a.SwapWith(b)
	assert.Equal(t, 0, hits)

	// Every element finalizes exactly once at the end.
	b.Release()
	assert.Equal(t, 4, hits)
}

func TestValueReceiverDropHook(t *testing.T) {
	hits := 0
	a := New[valueDrop]()
	a.Append(valueDrop{hits: &hits}, valueDrop{hits: &hits})
	a.Release()
	assert.Equal(t, 2, hits)
}

func TestManagedSlotsClearAfterRemove(t *testing.T) {
	a := New[string]()
	a.Append("a", "b", "c", "d", "e")
	a.RemoveRange(1, 2)

	require.Equal(t, []string{"a", "d", "e"}, a.Data())
	// Vacated tail slots must not pin the removed strings.
	for i := a.used; i < len(a.elems); i++ {
		require.Equal(t, "", a.elems[i])
	}
}

func TestManagedSlotsClearAfterClear(t *testing.T) {
	a := New[string]()
	a.Append("a", "b", "c")
	a.Clear()
	for i := 0; i < len(a.elems); i++ {
		require.Equal(t, "", a.elems[i])
	}
}

func TestManagedMoveLeavesSingleOwner(t *testing.T) {
	a := New[string]()
	a.Append("a", "b", "c", "d")
	a.Move(0, 2)
	require.Equal(t, []string{"b", "c", "a", "d"}, a.Data())

	seen := map[string]int{}
	for _, s := range a.Data() {
		seen[s]++
	}
	for s, n := range seen {
		require.Equal(t, 1, n, "element %q duplicated", s)
	}
}

func TestPointerElementDropHook(t *testing.T) {
	assert.True(t, droppableType[*fake.DropCounter]())
	assert.False(t, trivialType[*fake.DropCounter]())

	hits := 0
	a := New[*fake.DropCounter]()
	a.Append(&fake.DropCounter{ID: 0, Drops: &hits}, &fake.DropCounter{ID: 1, Drops: &hits})

	a.RemoveAt(0)
	assert.Equal(t, 1, hits)
	a.Release()
	assert.Equal(t, 2, hits)
}

// closer is an interface element type whose method set includes the hook.
type closer interface {
	Drop()
	Name() string
}

type namedDrop struct {
	name string
	hits *int
}

func (n *namedDrop) Drop()        { *n.hits++ }
func (n *namedDrop) Name() string { return n.name }

func TestInterfaceElementDropHook(t *testing.T) {
	assert.True(t, droppableType[closer]())

	hits := 0
	a := New[closer]()
	a.Append(closer(&namedDrop{name: "x", hits: &hits}))
	a.Append(closer(&namedDrop{name: "y", hits: &hits}))

	a.Clear()
	assert.Equal(t, 2, hits)

	// A nil interface element has no hook to run.
	a.Append(nil)
	a.Release()
	assert.Equal(t, 2, hits)
}
