package vdom

import (
	"log/slog"
	"weak"
)

// Dispatcher forwards a fired platform event to its component as a message.
// It holds weak pointers only, so it never keeps the component or the dirty
// signal alive. A new Dispatcher is created per Handler attribute per render.
type Dispatcher struct {
	// Event is the platform event type to listen for.
	Event string
	// Message is passed to Component.Handle.
	Message string

	component weak.Pointer[Cell]
	dirty     weak.Pointer[Dirty]
	logger    *slog.Logger
}

func newDispatcher(event, message string, cell *Cell, dirty *Dirty, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		Event:     event,
		Message:   message,
		component: weak.Make(cell),
		dirty:     weak.Make(dirty),
		logger:    logger,
	}
}

// Dispatch delivers the message synchronously. If the component is gone the
// event is dropped. The dirty signal is marked only when Handle reports a
// render-significant change.
func (d *Dispatcher) Dispatch(ev any) {
	comp := d.component.Value().Component()
	if comp == nil {
		d.logger.Debug("dropping event, component released", "event", d.Event, "message", d.Message)
		return
	}

	changed := callHandle(comp, d.Message, d.logger)
	d.logger.Debug("dispatched", "event", d.Event, "message", d.Message, "changed", changed)
	if !changed {
		return
	}

	if dirty := d.dirty.Value(); dirty != nil {
		dirty.Mark()
	} else {
		d.logger.Debug("dirty signal released", "message", d.Message)
	}
}

// Live reports whether the dispatcher can still reach its component.
func (d *Dispatcher) Live() bool {
	return d.component.Value().Component() != nil
}
