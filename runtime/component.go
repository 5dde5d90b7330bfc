package runtime

import "github.com/vcrobe/weft/vdom"

// Component is the capability contract a runtime renders. See vdom.Component.
type Component = vdom.Component

// Initializer is implemented by components that need setup before their
// first render. OnInit is called once, from the first Render.
type Initializer interface {
	OnInit()
}

// Cleaner is implemented by components that release resources when their
// runtime is torn down.
type Cleaner interface {
	OnDestroy()
}
