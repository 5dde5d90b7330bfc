//go:build js || wasm

package console

import (
	"log/slog"
	"strings"
	"syscall/js"
)

// New returns a logger writing to the browser console. Records at WARN go
// to console.warn, ERROR to console.error, everything else to console.log.
func New(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(consoleWriter{}, options(level)))
}

type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	method := "log"
	switch {
	case strings.Contains(line, " level=ERROR"):
		method = "error"
	case strings.Contains(line, " level=WARN"):
		method = "warn"
	}
	js.Global().Get("console").Call(method, line)
	return len(p), nil
}
