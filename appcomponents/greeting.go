package appcomponents

import (
	"fmt"

	"github.com/vcrobe/weft/runtime"
)

// Greeting toggles between a calm and an excited greeting.
type Greeting struct {
	runtime.ComponentBase

	Name    string
	Excited bool
}

// NewGreeting creates a greeting for name.
func NewGreeting(name string) *Greeting {
	g := &Greeting{Name: name}
	g.Expose("greeting", g.Text)
	g.Expose("mood", func() any {
		if g.Excited {
			return "excited"
		}
		return "calm"
	})
	g.On("toggle", func() bool {
		g.Excited = !g.Excited
		return true
	})
	return g
}

// Text returns the rendered greeting.
func (g *Greeting) Text() any {
	if g.Excited {
		return fmt.Sprintf("Hello, %s!", g.Name)
	}
	return fmt.Sprintf("Hello, %s.", g.Name)
}
