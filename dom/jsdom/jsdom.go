//go:build js || wasm

// Package jsdom implements the dom primitives over the browser DOM through
// syscall/js.
package jsdom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/vcrobe/weft/dom"
)

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Element   = (*Element)(nil)
	_ dom.Container = (*Element)(nil)

	_ dom.TemplateSource = (*Document)(nil)
)

// ErrNoDocument is returned when the global document is unavailable.
var ErrNoDocument = errors.New("js/document not available")

// Document wraps the global js document.
type Document struct {
	doc js.Value
}

// NewDocument returns the page document.
func NewDocument() (*Document, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil, ErrNoDocument
	}
	return &Document{doc: doc}, nil
}

// Node wraps any js node.
type Node struct {
	v js.Value
}

// Element wraps a js element.
type Element struct {
	Node
}

// NodeName implements dom.Node.
func (n *Node) NodeName() string { return n.v.Get("nodeName").String() }

// Value returns the underlying js value.
func (n *Node) Value() js.Value { return n.v }

// call invokes a js method, converting a thrown exception into an error.
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if jsErr, ok := rec.(js.Error); ok {
				err = fmt.Errorf("%s: %w", method, jsErr)
				return
			}
			err = fmt.Errorf("%s: %v", method, rec)
		}
	}()
	return v.Call(method, args...), nil
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	v, err := call(d.doc, "createElement", tag)
	if err != nil {
		return nil, err
	}
	return &Element{Node{v: v}}, nil
}

// CreateText implements dom.Document.
func (d *Document) CreateText(content string) (dom.Node, error) {
	v, err := call(d.doc, "createTextNode", content)
	if err != nil {
		return nil, err
	}
	return &Node{v: v}, nil
}

// TemplateMarkup returns the inner HTML of the element with the given id.
func (d *Document) TemplateMarkup(id string) (string, error) {
	v, err := call(d.doc, "getElementById", id)
	if err != nil {
		return "", err
	}
	if !v.Truthy() {
		return "", fmt.Errorf("#%s: %w", id, dom.ErrTemplateNotFound)
	}
	return v.Get("innerHTML").String(), nil
}

// QuerySelector returns the first element matching selector.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	v, err := call(d.doc, "querySelector", selector)
	if err != nil {
		return nil, err
	}
	if !v.Truthy() {
		return nil, fmt.Errorf("mount element not found for selector %q", selector)
	}
	return &Element{Node{v: v}}, nil
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) error {
	_, err := call(e.v, "setAttribute", name, value)
	return err
}

// AddEventListener implements dom.Element. The release func removes the
// listener and releases the js.Func backing it.
func (e *Element) AddEventListener(event string, fn dom.Listener) (func(), error) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev dom.Event
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	if _, err := call(e.v, "addEventListener", event, cb); err != nil {
		cb.Release()
		return nil, err
	}
	return func() {
		e.v.Call("removeEventListener", event, cb)
		cb.Release()
	}, nil
}

// AppendChild implements dom.Element.
func (e *Element) AppendChild(child dom.Node) error {
	v, err := unwrap(child)
	if err != nil {
		return err
	}
	_, err = call(e.v, "appendChild", v)
	return err
}

// ReplaceChildren implements dom.Container. The element is cleared through
// innerHTML before the nodes are appended in order.
func (e *Element) ReplaceChildren(nodes ...dom.Node) error {
	e.v.Set("innerHTML", "")
	for _, n := range nodes {
		if err := e.AppendChild(n); err != nil {
			return err
		}
	}
	return nil
}

func unwrap(n dom.Node) (js.Value, error) {
	switch n := n.(type) {
	case *Node:
		return n.v, nil
	case *Element:
		return n.v, nil
	default:
		return js.Undefined(), fmt.Errorf("foreign node %T", n)
	}
}
