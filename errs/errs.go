// Package errs provides the error taxonomy shared by the realize, materialize
// and runtime stages.
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfiguration indicates a template that does not fit its component,
	// such as a Dynamic key the component cannot resolve.
	KindConfiguration
	// KindPlatform indicates a presentation primitive failure.
	KindPlatform
	// KindLifetime indicates an operation on a runtime or component that is
	// already torn down.
	KindLifetime
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindPlatform:
		return "platform"
	case KindLifetime:
		return "lifetime"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingKey is wrapped by configuration errors raised for an
	// unresolvable Dynamic key.
	ErrMissingKey = errors.New("key not found in component")
	// ErrTornDown is wrapped by lifetime errors.
	ErrTornDown = errors.New("runtime torn down")
)

// Error is a categorized error raised during a render.
type Error struct {
	// Op is the operation that failed (e.g. "vdom.Realize").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Configuration wraps err as a KindConfiguration error.
func Configuration(op string, err error) error {
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}

// Platform wraps err as a KindPlatform error.
func Platform(op string, err error) error {
	return &Error{Op: op, Kind: KindPlatform, Err: err}
}

// Lifetime wraps err as a KindLifetime error.
func Lifetime(op string, err error) error {
	return &Error{Op: op, Kind: KindLifetime, Err: err}
}

// Is reports whether any error in err's chain is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
