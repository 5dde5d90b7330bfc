// Package memdom is an in-memory presentation layer. It backs the native
// tests and the weft CLI, supports simulated event dispatch and serializes
// trees to HTML.
package memdom

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vcrobe/weft/dom"
)

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Element   = (*Element)(nil)
	_ dom.Container = (*Element)(nil)

	_ dom.TemplateSource = (*Document)(nil)
)

// ErrForeignNode is returned when a node from another platform is appended.
var ErrForeignNode = errors.New("node does not belong to memdom")

// Document creates in-memory nodes. Fail, when set, is consulted before every
// primitive and lets tests inject platform failures.
type Document struct {
	Fail func(op, arg string) error

	created int
	mounts  []*Element
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Created returns how many nodes the document has created.
func (d *Document) Created() int {
	return d.created
}

func (d *Document) fail(op, arg string) error {
	if d.Fail == nil {
		return nil
	}
	return d.Fail(op, arg)
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	if err := d.fail("createElement", tag); err != nil {
		return nil, err
	}
	d.created++
	return &Element{doc: d, Tag: tag, Attrs: map[string]string{}}, nil
}

// CreateText implements dom.Document.
func (d *Document) CreateText(content string) (dom.Node, error) {
	if err := d.fail("createTextNode", content); err != nil {
		return nil, err
	}
	d.created++
	return &Text{Content: content}, nil
}

// NewMount returns a detached element to render into, like the #app div of a
// page.
func (d *Document) NewMount(id string) *Element {
	m := &Element{doc: d, Tag: "div", Attrs: map[string]string{"id": id}}
	d.mounts = append(d.mounts, m)
	return m
}

// TemplateMarkup implements dom.TemplateSource over the document's mounts: it
// returns the HTML of the children of the element with the given id.
func (d *Document) TemplateMarkup(id string) (string, error) {
	for _, m := range d.mounts {
		el := m
		if m.Attrs["id"] != id {
			el = ByID(m.Children, id)
		}
		if el != nil {
			var buf strings.Builder
			if err := Render(&buf, el.Children...); err != nil {
				return "", err
			}
			return buf.String(), nil
		}
	}
	return "", fmt.Errorf("#%s: %w", id, dom.ErrTemplateNotFound)
}

type listener struct {
	fn dom.Listener
}

// Element is an in-memory element.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []dom.Node

	doc       *Document
	parent    *Element
	listeners map[string][]*listener
}

// Text is an in-memory text node.
type Text struct {
	Content string

	parent *Element
}

// NodeName implements dom.Node.
func (e *Element) NodeName() string { return e.Tag }

// NodeName implements dom.Node.
func (t *Text) NodeName() string { return "#text" }

// Parent returns the element e is attached to, if any.
func (e *Element) Parent() *Element { return e.parent }

// Parent returns the element t is attached to, if any.
func (t *Text) Parent() *Element { return t.parent }

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) error {
	if err := e.doc.fail("setAttribute", name); err != nil {
		return err
	}
	e.Attrs[name] = value
	return nil
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, fn dom.Listener) (func(), error) {
	if err := e.doc.fail("addEventListener", event); err != nil {
		return nil, err
	}
	if e.listeners == nil {
		e.listeners = map[string][]*listener{}
	}
	l := &listener{fn: fn}
	e.listeners[event] = append(e.listeners[event], l)
	return func() {
		e.listeners[event] = slices.DeleteFunc(e.listeners[event], func(x *listener) bool { return x == l })
		if len(e.listeners[event]) == 0 {
			delete(e.listeners, event)
		}
	}, nil
}

// AppendChild implements dom.Element. A child attached elsewhere is moved.
func (e *Element) AppendChild(child dom.Node) error {
	if err := e.doc.fail("appendChild", e.Tag); err != nil {
		return err
	}
	return e.adopt(child)
}

func (e *Element) adopt(child dom.Node) error {
	switch c := child.(type) {
	case *Element:
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = e
	case *Text:
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = e
	default:
		return fmt.Errorf("append %T: %w", child, ErrForeignNode)
	}
	e.Children = append(e.Children, child)
	return nil
}

func (e *Element) remove(child dom.Node) {
	e.Children = slices.DeleteFunc(e.Children, func(n dom.Node) bool { return n == child })
}

// ReplaceChildren implements dom.Container.
func (e *Element) ReplaceChildren(nodes ...dom.Node) error {
	for _, c := range e.Children {
		switch c := c.(type) {
		case *Element:
			c.parent = nil
		case *Text:
			c.parent = nil
		}
	}
	e.Children = nil
	for _, n := range nodes {
		if err := e.adopt(n); err != nil {
			return err
		}
	}
	return nil
}

// Listeners returns the number of listeners attached for event.
func (e *Element) Listeners(event string) int {
	return len(e.listeners[event])
}

// Dispatch fires every listener registered for event, as a browser would on
// a user interaction, and returns how many ran.
func (e *Element) Dispatch(event string, ev dom.Event) int {
	ls := slices.Clone(e.listeners[event])
	for _, l := range ls {
		l.fn(ev)
	}
	return len(ls)
}

// Click is shorthand for Dispatch("click", nil).
func (e *Element) Click() int {
	return e.Dispatch("click", nil)
}

// TextContent concatenates the text of n and its descendants.
func TextContent(n dom.Node) string {
	switch n := n.(type) {
	case *Text:
		return n.Content
	case *Element:
		var s string
		for _, c := range n.Children {
			s += TextContent(c)
		}
		return s
	}
	return ""
}

// Find returns the elements under roots, in document order, for which match
// returns true.
func Find(roots []dom.Node, match func(*Element) bool) []*Element {
	var out []*Element
	var walk func(dom.Node)
	walk = func(n dom.Node) {
		el, ok := n.(*Element)
		if !ok {
			return
		}
		if match(el) {
			out = append(out, el)
		}
		for _, c := range el.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return out
}

// ByTag returns the elements with the given tag.
func ByTag(roots []dom.Node, tag string) []*Element {
	return Find(roots, func(e *Element) bool { return e.Tag == tag })
}

// ByID returns the first element whose id attribute matches, or nil.
func ByID(roots []dom.Node, id string) *Element {
	found := Find(roots, func(e *Element) bool { return e.Attrs["id"] == id })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
