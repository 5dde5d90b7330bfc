//go:build !js && !wasm

package console

import (
	"log/slog"
	"os"
)

// New returns a logger writing text records to stderr, keeping stdout free
// for command output.
func New(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, options(level)))
}
