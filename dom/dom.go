// Package dom defines the presentation primitives weft renders into and the
// Materializer that turns a view tree into an owned platform tree.
package dom

import "errors"

// ErrTemplateNotFound is returned by a TemplateSource with no element for an id.
var ErrTemplateNotFound = errors.New("template element not found")

// Node is an opaque handle to a platform presentation node.
type Node interface {
	NodeName() string
}

// Event is the platform event passed to listeners.
type Event any

// Listener is a callback registered for a platform event.
type Listener func(ev Event)

// Element is a platform element node.
type Element interface {
	Node
	SetAttribute(name, value string) error
	// AddEventListener registers fn for events of the given type. The returned
	// release func detaches the listener and frees whatever the platform holds
	// for it.
	AddEventListener(event string, fn Listener) (release func(), err error)
	AppendChild(child Node) error
}

// Document creates platform nodes.
type Document interface {
	CreateElement(tag string) (Element, error)
	CreateText(content string) (Node, error)
}

// Container is a mount target.
type Container interface {
	// ReplaceChildren clears the container and appends nodes in order.
	ReplaceChildren(nodes ...Node) error
}

// TemplateSource hands out template markup the host page carries, such as the
// content of a <template id="..."> element.
type TemplateSource interface {
	TemplateMarkup(id string) (string, error)
}
