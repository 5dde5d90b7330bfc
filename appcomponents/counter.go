package appcomponents

import (
	"github.com/vcrobe/weft/runtime"
)

// Counter demonstrates Dynamic attributes and click handlers.
type Counter struct {
	runtime.ComponentBase

	Count int
	Label string
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	c := &Counter{Label: "Clicks"}
	c.Expose("count", func() any { return c.Count })
	c.Expose("label", func() any { return c.Label })
	c.On("increment", c.Increment)
	c.On("decrement", c.Decrement)
	c.On("reset", c.Reset)
	return c
}

// Increment adds one.
func (c *Counter) Increment() bool {
	c.Count++
	return true
}

// Decrement subtracts one, stopping at zero.
func (c *Counter) Decrement() bool {
	if c.Count == 0 {
		return false
	}
	c.Count--
	return true
}

// Reset sets the count back to zero.
func (c *Counter) Reset() bool {
	if c.Count == 0 {
		return false
	}
	c.Count = 0
	return true
}
