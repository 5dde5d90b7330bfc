package vdom

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/vcrobe/weft/console"
	"github.com/vcrobe/weft/errs"
	"github.com/vcrobe/weft/template"
)

const opRealize = "vdom.Realize"

// Realizer binds template nodes to a component. It never mutates the
// component: Lookup is the only call made during realization.
type Realizer struct {
	// Logger receives diagnostics from realization and from every dispatcher
	// it creates. A nil Logger discards them.
	Logger *slog.Logger
}

// RealizeAll realizes every root of t in order.
func (r *Realizer) RealizeAll(t template.Template, cell *Cell, dirty *Dirty) ([]Node, error) {
	out := make([]Node, 0, len(t))
	for i, n := range t {
		v, err := r.Realize(n, cell, dirty)
		if err != nil {
			return nil, fmt.Errorf("root %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Realize produces a fresh view node for n. It fails with a configuration
// error as soon as any Dynamic key in the subtree cannot be resolved; no
// partial tree is returned.
func (r *Realizer) Realize(n template.Node, cell *Cell, dirty *Dirty) (Node, error) {
	comp := cell.Component()
	if comp == nil {
		return nil, errs.Lifetime(opRealize, errs.ErrTornDown)
	}
	return r.realize(n, comp, cell, dirty)
}

func (r *Realizer) realize(n template.Node, comp Component, cell *Cell, dirty *Dirty) (Node, error) {
	switch n := n.(type) {
	case *template.Text:
		return &Text{Content: n.Content}, nil
	case *template.Element:
		attrs, err := r.resolveAttrs(n, comp, cell, dirty)
		if err != nil {
			return nil, err
		}
		children := make([]Node, 0, len(n.Children))
		for _, c := range n.Children {
			v, err := r.realize(c, comp, cell, dirty)
			if err != nil {
				return nil, err
			}
			children = append(children, v)
		}
		return &Element{Tag: n.Tag, Attrs: attrs, Children: children}, nil
	case nil:
		return nil, errs.Configuration(opRealize, errors.New("nil template node"))
	default:
		return nil, errs.Configuration(opRealize, fmt.Errorf("unsupported template node %T", n))
	}
}

func (r *Realizer) resolveAttrs(el *template.Element, comp Component, cell *Cell, dirty *Dirty) (map[string]Resolved, error) {
	attrs := make(map[string]Resolved, len(el.Attrs))
	for _, name := range SortedNames(el.Attrs) {
		spec := el.Attrs[name]
		switch spec.Kind {
		case template.Static:
			attrs[name] = Value(spec.Value)
		case template.Dynamic:
			v, ok := comp.Lookup(spec.Value)
			if !ok {
				return nil, errs.Configuration(opRealize,
					fmt.Errorf("<%s %s%s=%q>: %w", el.Tag, template.DynamicPrefix, name, spec.Value, errs.ErrMissingKey))
			}
			attrs[name] = Value(fmt.Sprint(v))
		case template.Handler:
			attrs[name] = Binding{Dispatcher: newDispatcher(name, spec.Value, cell, dirty, r.logger())}
		default:
			return nil, errs.Configuration(opRealize, fmt.Errorf("<%s %s>: unknown attribute kind %d", el.Tag, name, spec.Kind))
		}
	}
	return attrs, nil
}

func (r *Realizer) logger() *slog.Logger {
	if r == nil || r.Logger == nil {
		return console.NewNop()
	}
	return r.Logger
}

// SortedNames returns the keys of an attribute map in sorted order.
func SortedNames[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
