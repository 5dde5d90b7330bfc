// Package runtime owns one component instance together with its template,
// dirty signal and current rendered generation, and composes realization and
// materialization into a single Render operation.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vcrobe/weft/console"
	"github.com/vcrobe/weft/dom"
	"github.com/vcrobe/weft/errs"
	"github.com/vcrobe/weft/template"
	"github.com/vcrobe/weft/vdom"
)

// Compile-time assertion to ensure Runtime implements the Renderer interface.
var _ Renderer = (*Runtime)(nil)

// ErrNestedRender is returned when Render is called while a render of the
// same runtime is in flight, e.g. from a component's Lookup.
var ErrNestedRender = errors.New("render called during render")

const opRender = "runtime.Render"

// State is the lifecycle state of a Runtime.
type State int

const (
	// Constructed: component built, nothing rendered yet.
	Constructed State = iota
	// Rendered: a generation is held; re-entered on every Render.
	Rendered
	// TornDown is terminal.
	TornDown
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "constructed"
	case Rendered:
		return "rendered"
	case TornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// Runtime renders a template against one component. It is not safe for
// concurrent use; all calls and all dispatches happen on the thread that owns
// the presentation layer.
type Runtime struct {
	name     string
	logger   *slog.Logger
	template template.Template

	cell  *vdom.Cell
	dirty *vdom.Dirty

	realizer     vdom.Realizer
	materializer dom.Materializer

	view   []vdom.Node
	gen    *dom.Generation
	target dom.Container

	state       State
	rendering   bool
	initialized bool
}

// New creates a runtime in the Constructed state. The template is shared, not
// copied.
func New(doc dom.Document, c Component, t template.Template, opts ...Option) *Runtime {
	r := &Runtime{
		name:     "component",
		logger:   console.NewNop(),
		template: t,
		cell:     vdom.NewCell(c),
		dirty:    vdom.NewDirty(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("runtime", r.name)
	r.realizer = vdom.Realizer{Logger: r.logger}
	r.materializer = dom.Materializer{Doc: doc, Logger: r.logger}
	return r
}

// Name returns the runtime's name.
func (r *Runtime) Name() string { return r.name }

// State returns the lifecycle state.
func (r *Runtime) State() State { return r.state }

// Dirty returns the runtime's dirty signal. After Teardown it is a detached
// signal that stays clear, since no dispatcher can reach it.
func (r *Runtime) Dirty() *vdom.Dirty { return r.dirty }

// Component returns the owned component, or nil after Teardown.
func (r *Runtime) Component() Component { return r.cell.Component() }

// Template returns the template the runtime renders.
func (r *Runtime) Template() template.Template { return r.template }

// View returns the view roots of the last successful render.
func (r *Runtime) View() []vdom.Node { return r.view }

// Roots returns the platform roots of the last successful render.
func (r *Runtime) Roots() []dom.Node { return r.gen.Roots() }

// Render builds a complete new generation off the live tree. Only once it
// fully exists are the previous generation's listeners released and the new
// one adopted; on failure the previous generation stays valid and the error
// is returned. The dirty signal is not consumed.
func (r *Runtime) Render() ([]dom.Node, error) {
	view, gen, err := r.build()
	if err != nil {
		return nil, err
	}
	r.adopt(view, gen)
	return gen.Roots(), nil
}

// RenderInto renders and, on success, replaces target's content with the new
// roots. The previous generation keeps its listeners until the new roots are
// mounted, so a failed mount leaves the old tree fully live.
func (r *Runtime) RenderInto(target dom.Container) error {
	view, gen, err := r.build()
	if err != nil {
		return err
	}
	if err := target.ReplaceChildren(gen.Roots()...); err != nil {
		gen.Release()
		r.logger.Error("mount failed", "error", err)
		return errs.Platform(opRender, fmt.Errorf("mount %s: %w", r.name, err))
	}
	r.adopt(view, gen)
	r.target = target
	return nil
}

// build realizes and materializes a new generation without touching the
// current one.
func (r *Runtime) build() ([]vdom.Node, *dom.Generation, error) {
	if r.state == TornDown {
		return nil, nil, r.tornDown()
	}
	if r.rendering {
		return nil, nil, fmt.Errorf("%s: %w", r.name, ErrNestedRender)
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	if !r.initialized {
		if initializer, ok := r.cell.Component().(Initializer); ok {
			r.callOnInit(initializer)
		}
		r.initialized = true
	}

	view, err := r.realizer.RealizeAll(r.template, r.cell, r.dirty)
	if err != nil {
		r.logger.Error("realize failed", "error", err)
		return nil, nil, fmt.Errorf("render %s: %w", r.name, err)
	}
	gen, err := r.materializer.Materialize(view)
	if err != nil {
		r.logger.Error("materialize failed", "error", err)
		return nil, nil, fmt.Errorf("render %s: %w", r.name, err)
	}
	// OnInit or a Lookup may have torn the runtime down mid-render.
	if r.state == TornDown {
		gen.Release()
		return nil, nil, r.tornDown()
	}
	return view, gen, nil
}

func (r *Runtime) adopt(view []vdom.Node, gen *dom.Generation) {
	prev := r.gen
	r.view, r.gen = view, gen
	prev.Release()
	r.state = Rendered
	r.logger.Debug("rendered", "roots", len(gen.Roots()), "listeners", gen.Listeners())
}

func (r *Runtime) tornDown() error {
	return errs.Lifetime(opRender, fmt.Errorf("%s: %w", r.name, errs.ErrTornDown))
}

// Teardown releases the current generation's listeners, clears the last
// mount target, and invalidates the component so dispatchers captured from
// any earlier render become no-ops. It is idempotent.
func (r *Runtime) Teardown() {
	if r.state == TornDown {
		return
	}
	if cleaner, ok := r.cell.Component().(Cleaner); ok {
		r.callOnDestroy(cleaner)
	}
	r.gen.Release()
	if r.target != nil {
		if err := r.target.ReplaceChildren(); err != nil {
			r.logger.Warn("clearing mount target failed", "error", err)
		}
	}
	r.cell.Invalidate()
	r.dirty = vdom.NewDirty()
	r.dirty.Reset()
	r.view, r.gen, r.target = nil, nil, nil
	r.state = TornDown
	r.logger.Debug("torn down")
}
