// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, logging, and debug introspection layer.
// Part of hioload-vec storage architecture core.
//
// Provides concurrent-safe observability primitives including:
//   - Pluggable structured logging (no-op unless installed)
//   - Metrics telemetry for allocators and arrays
//   - State export, debug hooks, and probe registration
//
// The storage primitives themselves never log on hot paths; only slow-path
// events (mapping fallbacks, drains) reach the logger.
package control
