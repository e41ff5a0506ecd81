// File: pool/arena_windows.go
//go:build windows
// +build windows

// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-vec/api"
)

var (
	kern32           = windows.NewLazySystemDLL("kernel32.dll")
	procVirtualAlloc = kern32.NewProc("VirtualAlloc")
	procVirtualFree  = kern32.NewProc("VirtualFree")
)

// osMap commits length bytes of zeroed virtual memory.
func osMap(length int, huge bool) ([]byte, error) {
	flags := uintptr(windows.MEM_RESERVE | windows.MEM_COMMIT)
	if huge {
		flags |= windows.MEM_LARGE_PAGES
	}
	addr, _, err := procVirtualAlloc.Call(0, uintptr(length), flags, windows.PAGE_READWRITE)
	if addr == 0 {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length), nil
}

// osRemap is unavailable: VirtualAlloc reservations cannot grow in place.
func osRemap(b []byte, newLength int) ([]byte, error) {
	return nil, api.ErrNotSupported
}

// osUnmap releases the whole reservation backing b.
func osUnmap(b []byte) error {
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	r, _, err := procVirtualFree.Call(addr, 0, windows.MEM_RELEASE)
	if r == 0 {
		return err
	}
	return nil
}

// osPageSize reports the allocation granularity. VirtualAlloc reservations
// round to 64 KiB regardless of the system page size.
func osPageSize(huge bool) int {
	if huge {
		return 2 << 20
	}
	return 64 << 10
}
