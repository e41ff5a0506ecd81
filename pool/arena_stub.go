// File: pool/arena_stub.go
//go:build !linux && !windows
// +build !linux,!windows

// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Arena stub for platforms without a mapping backend: every request routes
// through the heap fallback.

package pool

import (
	"os"

	"github.com/momentics/hioload-vec/api"
)

func osMap(length int, huge bool) ([]byte, error) {
	return nil, api.ErrNotSupported
}

func osRemap(b []byte, newLength int) ([]byte, error) {
	return nil, api.ErrNotSupported
}

func osUnmap(b []byte) error {
	return nil
}

func osPageSize(huge bool) int {
	return os.Getpagesize()
}
