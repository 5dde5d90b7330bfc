//go:build dev

package vdom

import "log/slog"

// callHandle invokes Handle in development mode.
// Panics propagate to aid debugging and fast failure.
func callHandle(c Component, message string, logger *slog.Logger) bool {
	return c.Handle(message)
}
