//go:build !dev

package runtime

import "fmt"

// callOnInit runs the component's OnInit hook. A panic is logged and the
// render carries on as if the hook had returned.
func (r *Runtime) callOnInit(initializer Initializer) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("OnInit panic", "runtime", r.name, "panic", fmt.Sprint(rec))
		}
	}()
	initializer.OnInit()
}

// callOnDestroy runs the component's OnDestroy hook. A panic is logged and
// teardown completes.
func (r *Runtime) callOnDestroy(cleaner Cleaner) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("OnDestroy panic", "runtime", r.name, "panic", fmt.Sprint(rec))
		}
	}()
	cleaner.OnDestroy()
}
