// Package vdom holds the view tree produced by realizing a template against a
// component, and the dispatchers bound to its Handler attributes.
package vdom

// Node is either an *Element or a *Text.
type Node interface {
	isNode()
}

// Element is a realized element. Attrs maps the un-prefixed attribute name to
// its resolved value or event binding.
type Element struct {
	Tag      string
	Attrs    map[string]Resolved
	Children []Node
}

// Text is a realized text node.
type Text struct {
	Content string
}

func (*Element) isNode() {}
func (*Text) isNode()    {}

// Resolved is either a Value or a Binding.
type Resolved interface {
	isResolved()
}

// Value is a literal attribute value.
type Value string

// Binding attaches a dispatcher to the event named by the attribute.
type Binding struct {
	Dispatcher *Dispatcher
}

func (Value) isResolved()   {}
func (Binding) isResolved() {}

// Bindings returns every dispatcher in the tree rooted at n, in template order
// with attributes visited by name.
func Bindings(n Node) []*Dispatcher {
	var out []*Dispatcher
	var walk func(Node)
	walk = func(n Node) {
		el, ok := n.(*Element)
		if !ok {
			return
		}
		for _, name := range SortedNames(el.Attrs) {
			if b, ok := el.Attrs[name].(Binding); ok {
				out = append(out, b.Dispatcher)
			}
		}
		for _, c := range el.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
