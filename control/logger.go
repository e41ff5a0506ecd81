// File: control/logger.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Library-wide logger hook. The library stays silent unless the host
// installs a logger; slow-path events then surface as structured records.

package control

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Log returns the installed logger, a no-op logger by default.
func Log() *zap.Logger {
	return current.Load()
}

// SetLogger installs l as the library logger. A nil l restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}
