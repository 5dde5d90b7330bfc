package dom

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vcrobe/weft/console"
	"github.com/vcrobe/weft/errs"
	"github.com/vcrobe/weft/vdom"
)

const opMaterialize = "dom.Materialize"

// Generation is one rendered platform tree together with every listener it
// registered. A runtime owns exactly one generation at a time.
type Generation struct {
	roots    []Node
	releases []func()
}

// Roots returns the ordered platform roots.
func (g *Generation) Roots() []Node {
	if g == nil {
		return nil
	}
	return g.roots
}

// Listeners returns the number of listeners still attached.
func (g *Generation) Listeners() int {
	if g == nil {
		return 0
	}
	return len(g.releases)
}

// Release detaches every listener of the generation so its dispatchers can
// be collected. It is safe to call more than once.
func (g *Generation) Release() {
	if g == nil {
		return
	}
	for _, release := range g.releases {
		release()
	}
	g.releases = nil
}

// Materializer builds platform trees on a Document.
type Materializer struct {
	Doc    Document
	Logger *slog.Logger
}

// Materialize creates the platform tree for roots. Attributes and listeners
// are attached to a node before its children are appended. Any primitive
// failure aborts the whole generation: listeners registered so far are
// released and no roots are returned.
func (m *Materializer) Materialize(roots []vdom.Node) (*Generation, error) {
	if m.Doc == nil {
		return nil, errs.Platform(opMaterialize, errors.New("no document"))
	}
	gen := &Generation{roots: make([]Node, 0, len(roots))}
	for i, v := range roots {
		n, err := m.build(v, gen)
		if err != nil {
			gen.Release()
			return nil, fmt.Errorf("root %d: %w", i, err)
		}
		gen.roots = append(gen.roots, n)
	}
	m.logger().Debug("materialized", "roots", len(gen.roots), "listeners", len(gen.releases))
	return gen, nil
}

func (m *Materializer) build(v vdom.Node, gen *Generation) (Node, error) {
	switch v := v.(type) {
	case *vdom.Text:
		n, err := m.Doc.CreateText(v.Content)
		if err != nil {
			return nil, errs.Platform(opMaterialize, fmt.Errorf("create text: %w", err))
		}
		return n, nil
	case *vdom.Element:
		el, err := m.Doc.CreateElement(v.Tag)
		if err != nil {
			return nil, errs.Platform(opMaterialize, fmt.Errorf("create <%s>: %w", v.Tag, err))
		}
		if err := m.attach(el, v, gen); err != nil {
			return nil, err
		}
		for _, c := range v.Children {
			child, err := m.build(c, gen)
			if err != nil {
				return nil, err
			}
			if err := el.AppendChild(child); err != nil {
				return nil, errs.Platform(opMaterialize, fmt.Errorf("append to <%s>: %w", v.Tag, err))
			}
		}
		return el, nil
	default:
		return nil, errs.Platform(opMaterialize, fmt.Errorf("unsupported view node %T", v))
	}
}

func (m *Materializer) attach(el Element, v *vdom.Element, gen *Generation) error {
	for _, name := range vdom.SortedNames(v.Attrs) {
		switch a := v.Attrs[name].(type) {
		case vdom.Value:
			if err := el.SetAttribute(name, string(a)); err != nil {
				return errs.Platform(opMaterialize, fmt.Errorf("<%s %s>: %w", v.Tag, name, err))
			}
		case vdom.Binding:
			d := a.Dispatcher
			release, err := el.AddEventListener(d.Event, func(ev Event) { d.Dispatch(ev) })
			if err != nil {
				return errs.Platform(opMaterialize, fmt.Errorf("<%s @%s>: %w", v.Tag, d.Event, err))
			}
			if release != nil {
				gen.releases = append(gen.releases, release)
			}
		default:
			return errs.Platform(opMaterialize, fmt.Errorf("<%s %s>: unsupported attribute %T", v.Tag, name, a))
		}
	}
	return nil
}

func (m *Materializer) logger() *slog.Logger {
	if m.Logger == nil {
		return console.NewNop()
	}
	return m.Logger
}
