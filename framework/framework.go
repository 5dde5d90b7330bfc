// Package framework is the registry and mount driver around runtime: it maps
// component names to constructors and templates, mounts instances into
// containers and re-renders dirty instances when ticked.
package framework

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/vcrobe/weft/console"
	"github.com/vcrobe/weft/dom"
	"github.com/vcrobe/weft/markup"
	"github.com/vcrobe/weft/runtime"
	"github.com/vcrobe/weft/template"
)

var (
	// ErrUnknownComponent is returned when mounting an unregistered name.
	ErrUnknownComponent = errors.New("unknown component")
	// ErrDuplicateComponent is returned when a name is registered twice.
	ErrDuplicateComponent = errors.New("component already registered")
	// ErrUnknownInstance is returned when unmounting an id that is not mounted.
	ErrUnknownInstance = errors.New("unknown instance")
)

// Constructor builds a fresh component for a mount.
type Constructor func() runtime.Component

type registration struct {
	construct Constructor
	template  template.Template
}

// Instance is one mounted component.
type Instance struct {
	ID      string
	Name    string
	Runtime *runtime.Runtime
	Target  dom.Container
}

// Framework holds registrations and mounted instances.
type Framework struct {
	doc        dom.Document
	logger     *slog.Logger
	components map[string]registration
	instances  []*Instance
}

// Option configures a Framework.
type Option func(*Framework)

// WithLogger sets the logger handed to every runtime.
func WithLogger(l *slog.Logger) Option {
	return func(f *Framework) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a framework rendering on doc.
func New(doc dom.Document, opts ...Option) *Framework {
	f := &Framework{
		doc:        doc,
		logger:     console.NewNop(),
		components: make(map[string]registration),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Register adds a component under name. The template is shared by every
// instance of the component.
func (f *Framework) Register(name string, construct Constructor, t template.Template) error {
	if _, ok := f.components[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrDuplicateComponent)
	}
	f.components[name] = registration{construct: construct, template: t}
	return nil
}

// RegisterMarkup parses src and registers the result under name.
func (f *Framework) RegisterMarkup(name string, construct Constructor, src string) error {
	t, err := markup.Parse(src)
	if err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}
	return f.Register(name, construct, t)
}

// RegisterFromPage reads the markup held by the page element with the given
// id and registers it under name.
func (f *Framework) RegisterFromPage(name string, construct Constructor, src dom.TemplateSource, id string) error {
	markup, err := src.TemplateMarkup(id)
	if err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}
	return f.RegisterMarkup(name, construct, markup)
}

// Components returns the registered names in sorted order.
func (f *Framework) Components() []string {
	return slices.Sorted(maps.Keys(f.components))
}

// Mount constructs the named component, renders it into target and keeps the
// instance for Tick. If the first render fails the instance is torn down and
// not kept.
func (f *Framework) Mount(target dom.Container, name string) (*Instance, error) {
	reg, ok := f.components[name]
	if !ok {
		return nil, fmt.Errorf("mount %s: %w", name, ErrUnknownComponent)
	}
	id := uuid.NewString()
	f.logger.Info("mounting", "component", name, "instance", id)

	rt := runtime.New(f.doc, reg.construct(), reg.template,
		runtime.WithName(name),
		runtime.WithLogger(f.logger.With("instance", id)),
	)
	if err := rt.RenderInto(target); err != nil {
		rt.Teardown()
		return nil, fmt.Errorf("mount %s: %w", name, err)
	}
	rt.Dirty().Reset()

	inst := &Instance{ID: id, Name: name, Runtime: rt, Target: target}
	f.instances = append(f.instances, inst)
	return inst, nil
}

// Tick re-renders, in mount order, every instance whose dirty signal is set,
// consuming the signal. It returns how many instances rendered. Failed
// renders leave their previous tree mounted and are reported together.
// Instances whose runtime was torn down directly are forgotten.
func (f *Framework) Tick() (int, error) {
	f.instances = slices.DeleteFunc(f.instances, func(inst *Instance) bool {
		if inst.Runtime.State() != runtime.TornDown {
			return false
		}
		f.logger.Info("dropping torn down instance", "component", inst.Name, "instance", inst.ID)
		return true
	})

	var rendered int
	var errs []error
	for _, inst := range f.instances {
		if !inst.Runtime.Dirty().Consume() {
			continue
		}
		if err := inst.Runtime.RenderInto(inst.Target); err != nil {
			f.logger.Error("tick render failed", "component", inst.Name, "instance", inst.ID, "error", err)
			errs = append(errs, err)
			continue
		}
		rendered++
	}
	return rendered, errors.Join(errs...)
}

// Unmount tears down the instance with the given id and clears its target.
func (f *Framework) Unmount(id string) error {
	idx := slices.IndexFunc(f.instances, func(i *Instance) bool { return i.ID == id })
	if idx < 0 {
		return fmt.Errorf("unmount %s: %w", id, ErrUnknownInstance)
	}
	inst := f.instances[idx]
	inst.Runtime.Teardown()
	f.instances = slices.Delete(f.instances, idx, idx+1)
	f.logger.Info("unmounted", "component", inst.Name, "instance", id)
	return nil
}

// Instances returns the mounted instances in mount order.
func (f *Framework) Instances() []*Instance {
	return slices.Clone(f.instances)
}
