package vdom

// Component is the capability contract a template is bound against.
//
// Lookup resolves a Dynamic attribute key to a displayable value; the value is
// stringified with fmt.Sprint. Handle receives the message of a fired Handler
// attribute and reports whether the change is render-significant.
type Component interface {
	Lookup(key string) (any, bool)
	Handle(message string) bool
}

// Cell is the strong owner slot of a runtime's Component. Dispatchers only
// hold weak pointers to it.
type Cell struct {
	c Component
}

// NewCell wraps c.
func NewCell(c Component) *Cell {
	return &Cell{c: c}
}

// Component returns the owned component, or nil once invalidated.
func (c *Cell) Component() Component {
	if c == nil {
		return nil
	}
	return c.c
}

// Invalidate drops the component so outstanding dispatchers stop delivering
// immediately instead of waiting for the garbage collector.
func (c *Cell) Invalidate() {
	c.c = nil
}

// Dirty is the shared flag telling an external driver that a re-render is
// warranted. It is never consumed by the render itself.
type Dirty struct {
	set   bool
	marks uint64
}

// NewDirty returns a signal that starts set, so the first render is due.
func NewDirty() *Dirty {
	return &Dirty{set: true}
}

// Mark sets the signal.
func (d *Dirty) Mark() {
	d.set = true
	d.marks++
}

// IsSet reports whether the signal is set.
func (d *Dirty) IsSet() bool {
	return d.set
}

// Consume clears the signal and reports whether it was set.
func (d *Dirty) Consume() bool {
	was := d.set
	d.set = false
	return was
}

// Reset clears the signal.
func (d *Dirty) Reset() {
	d.set = false
}

// Marks returns how many times the signal was marked by dispatch.
func (d *Dirty) Marks() uint64 {
	return d.marks
}
