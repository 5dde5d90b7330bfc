//go:build dev

package runtime

// callOnInit runs the component's OnInit hook. Built with -tags dev, a panic
// in the hook escapes Render.
func (r *Runtime) callOnInit(initializer Initializer) {
	initializer.OnInit()
}

// callOnDestroy runs the component's OnDestroy hook; a panic escapes Teardown.
func (r *Runtime) callOnDestroy(cleaner Cleaner) {
	cleaner.OnDestroy()
}
