package runtime

import (
	"github.com/vcrobe/weft/dom"
	"github.com/vcrobe/weft/vdom"
)

// Renderer is the set of runtime operations an external driver uses.
// Nothing in a Renderer decides when to render; the driver does.
type Renderer interface {
	// Render realizes and materializes the whole template and returns the
	// new platform roots.
	Render() ([]dom.Node, error)

	// RenderInto renders and replaces the content of target with the new
	// roots. The target is untouched if the render fails.
	RenderInto(target dom.Container) error

	// Dirty returns the signal dispatchers mark on render-significant changes.
	Dirty() *vdom.Dirty

	// Teardown detaches the platform tree and releases the component.
	Teardown()
}
