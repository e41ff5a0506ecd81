// File: pool/arena_linux.go
//go:build linux
// +build linux

//
// Package pool: Linux arena mapping via anonymous mmap.
//
// Regions are mapped with MAP_ANONYMOUS|MAP_PRIVATE; huge arenas add
// MAP_HUGETLB for 2 MiB pages and require hugepage reservations on the
// host. Failed mappings surface as errors so the arena can fall back to
// the Go heap.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"os"

	"golang.org/x/sys/unix"
)

const hugePageSize = 2 << 20

// osMap maps length bytes of zeroed anonymous memory.
func osMap(length int, huge bool) ([]byte, error) {
	flags := unix.MAP_ANONYMOUS | unix.MAP_PRIVATE
	if huge {
		flags |= unix.MAP_HUGETLB
	}
	return unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, flags)
}

// osRemap grows a mapping in place, letting the kernel move it when the
// adjacent address space is taken.
func osRemap(b []byte, newLength int) ([]byte, error) {
	return unix.Mremap(b, newLength, unix.MREMAP_MAYMOVE)
}

// osUnmap returns a mapping to the kernel.
func osUnmap(b []byte) error {
	return unix.Munmap(b)
}

// osPageSize reports the mapping granularity.
func osPageSize(huge bool) int {
	if huge {
		return hugePageSize
	}
	return os.Getpagesize()
}
