package runtime

import (
	"fmt"
	"maps"
	"slices"
)

// ComponentBase is a struct that components can embed to satisfy Component
// without writing Lookup and Handle by hand. Values and handlers are
// registered by name, usually from the component's constructor.
//
// Example usage in a component:
//
//	func NewCounter() *Counter {
//	    c := &Counter{}
//	    c.Expose("count", func() any { return c.Count })
//	    c.On("increment", func() bool { c.Count++; return true })
//	    return c
//	}
type ComponentBase struct {
	values   map[string]func() any
	handlers map[string]func() bool
}

// Expose registers a getter for a Dynamic attribute key.
func (b *ComponentBase) Expose(key string, get func() any) {
	if b.values == nil {
		b.values = make(map[string]func() any)
	}
	b.values[key] = get
}

// On registers a handler for a message. The handler reports whether the
// change is render-significant.
func (b *ComponentBase) On(message string, fn func() bool) {
	if b.handlers == nil {
		b.handlers = make(map[string]func() bool)
	}
	b.handlers[message] = fn
}

// Lookup implements Component.
func (b *ComponentBase) Lookup(key string) (any, bool) {
	get, ok := b.values[key]
	if !ok {
		return nil, false
	}
	return get(), true
}

// Handle implements Component. Unknown messages are ignored and report no
// change.
func (b *ComponentBase) Handle(message string) bool {
	fn, ok := b.handlers[message]
	if !ok {
		return false
	}
	return fn()
}

// Keys returns the exposed keys in sorted order.
func (b *ComponentBase) Keys() []string {
	return slices.Sorted(maps.Keys(b.values))
}

// String lists the exposed keys, for diagnostics.
func (b *ComponentBase) String() string {
	return fmt.Sprintf("component%v", b.Keys())
}
