// Package appcomponents holds the sample components mounted by the browser
// entrypoint.
package appcomponents

import (
	_ "embed"

	"github.com/vcrobe/weft/framework"
	"github.com/vcrobe/weft/runtime"
)

var (
	//go:embed templates/counter.html
	counterMarkup string

	//go:embed templates/greeting.html
	greetingMarkup string
)

// Register adds every sample component to f.
func Register(f *framework.Framework) error {
	if err := f.RegisterMarkup("counter", func() runtime.Component { return NewCounter() }, counterMarkup); err != nil {
		return err
	}
	return f.RegisterMarkup("greeting", func() runtime.Component { return NewGreeting("weft") }, greetingMarkup)
}
