//go:build js || wasm
// +build js wasm

// Command weft-wasm mounts the sample components into a browser page.
package main

import (
	"errors"
	"log/slog"
	"syscall/js"

	"github.com/vcrobe/weft/appcomponents"
	"github.com/vcrobe/weft/console"
	"github.com/vcrobe/weft/dom"
	"github.com/vcrobe/weft/dom/jsdom"
	"github.com/vcrobe/weft/framework"
	"github.com/vcrobe/weft/runtime"
)

func main() {
	logger := console.New(slog.LevelInfo)

	// 1. Bind the browser document
	doc, err := jsdom.NewDocument()
	if err != nil {
		panic("Error binding document: " + err.Error())
	}

	// 2. Register the sample components
	f := framework.New(doc, framework.WithLogger(logger))
	if err := appcomponents.Register(f); err != nil {
		panic("Error registering components: " + err.Error())
	}

	// 3. A page may carry its own greeting markup in <template id="weft-greeting">
	mounts := map[string]string{
		"#app":      "counter",
		"#greeting": "greeting",
	}
	err = f.RegisterFromPage("page-greeting", func() runtime.Component {
		return appcomponents.NewGreeting("page")
	}, doc, "weft-greeting")
	switch {
	case err == nil:
		mounts["#page-greeting"] = "page-greeting"
	case errors.Is(err, dom.ErrTemplateNotFound):
		logger.Debug("page carries no greeting template")
	default:
		logger.Error("page template rejected", "err", err)
	}

	// 4. Mount each component into its container
	for selector, name := range mounts {
		target, err := doc.QuerySelector(selector)
		if err != nil {
			logger.Warn("mount target not found", "selector", selector, "err", err)
			continue
		}
		if _, err := f.Mount(target, name); err != nil {
			logger.Error("mount failed", "component", name, "err", err)
		}
	}

	// 5. Re-render dirty instances on every animation frame
	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if _, err := f.Tick(); err != nil {
			logger.Error("tick failed", "err", err)
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	// Keep the Go program running
	select {}
}
