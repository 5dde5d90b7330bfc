//go:build !dev

package vdom

import (
	"fmt"
	"log/slog"
)

// callHandle invokes Handle in production mode.
// A panicking handler is recovered, logged and counted as no change.
func callHandle(c Component, message string, logger *slog.Logger) (changed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("handler panic", "message", message, "panic", fmt.Sprint(rec))
			changed = false
		}
	}()
	return c.Handle(message)
}
