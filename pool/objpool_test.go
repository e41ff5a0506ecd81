// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package pool_test

import (
	"testing"

	"github.com/momentics/hioload-vec/pool"
)

type scratch struct {
	buf []byte
}

func TestSyncPoolInvokesCreatorOnMiss(t *testing.T) {
	created := 0
	p := pool.NewSyncPool(func() *scratch {
		created++
		return &scratch{buf: make([]byte, 0, 32)}
	})

	s := p.Get()
	if s == nil {
		t.Fatal("Get returned nil")
	}
	if created != 1 {
		t.Fatalf("creator invoked %d times, want 1", created)
	}
	if cap(s.buf) != 32 {
		t.Errorf("creator output not returned: cap = %d", cap(s.buf))
	}
}

func TestSyncPoolRoundTripKeepsState(t *testing.T) {
	p := pool.NewSyncPool(func() *scratch { return &scratch{} })

	s := p.Get()
	s.buf = append(s.buf, 1, 2, 3)
	p.Put(s)

	// sync.Pool may or may not hand the same instance back; when it does,
	// state survives and callers are responsible for resetting it.
	s2 := p.Get()
	if s2 == s && len(s2.buf) != 3 {
		t.Errorf("reused instance lost state: len = %d", len(s2.buf))
	}
}
