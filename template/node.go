// Package template holds the parsed, immutable node tree a component is
// rendered from. A Template is built once by a markup collaborator and shared
// by reference across every render of a runtime.
package template

import "strings"

// AttrKind tags how an attribute is resolved at render time.
type AttrKind int

const (
	// Static attributes are copied to the view verbatim.
	Static AttrKind = iota
	// Dynamic attributes are resolved through the component's Lookup.
	Dynamic
	// Handler attributes bind a platform event to a component message.
	Handler
)

func (k AttrKind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Handler:
		return "handler"
	default:
		return "unknown"
	}
}

// Attribute name prefixes.
const (
	DynamicPrefix = ":"
	HandlerPrefix = "@"
)

// Attr is an attribute spec. Value is the literal for Static, the lookup key
// for Dynamic and the message for Handler.
type Attr struct {
	Kind  AttrKind
	Value string
}

// StaticAttr returns a Static attribute spec.
func StaticAttr(value string) Attr { return Attr{Kind: Static, Value: value} }

// DynamicAttr returns a Dynamic attribute spec looking up key.
func DynamicAttr(key string) Attr { return Attr{Kind: Dynamic, Value: key} }

// HandlerAttr returns a Handler attribute spec dispatching message.
func HandlerAttr(message string) Attr { return Attr{Kind: Handler, Value: message} }

// ParseAttr splits a raw attribute name into its un-prefixed name and spec.
// For Handler attributes the returned name is the platform event type.
func ParseAttr(rawName, value string) (string, Attr) {
	if name, ok := strings.CutPrefix(rawName, DynamicPrefix); ok {
		return name, DynamicAttr(value)
	}
	if name, ok := strings.CutPrefix(rawName, HandlerPrefix); ok {
		return name, HandlerAttr(value)
	}
	return rawName, StaticAttr(value)
}

// Node is either an *Element or a *Text.
type Node interface {
	isNode()
}

// Element is a tagged node with attribute specs and ordered children.
type Element struct {
	Tag      string
	Attrs    map[string]Attr
	Children []Node
}

// Text is a literal text node.
type Text struct {
	Content string
}

func (*Element) isNode() {}
func (*Text) isNode()    {}

// Template is the ordered list of root nodes of a component.
type Template []Node

// El creates an element node.
func El(tag string, attrs map[string]Attr, children ...Node) *Element {
	if attrs == nil {
		attrs = map[string]Attr{}
	}
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// Txt creates a text node.
func Txt(content string) *Text {
	return &Text{Content: content}
}
