// Package shared defines options and error sentinels for the
// reference-counted handle.
package shared

import (
	"errors"

	"github.com/ownptr/ownptr/trace"
)

// ErrNilDeref is returned when dereferencing an empty handle.
// Usage: if errors.Is(err, shared.ErrNilDeref) { /* handle was empty */ }.
var ErrNilDeref = errors.New("shared: dereference of empty handle")

// ErrBadUpcast is the panic value for an Upcast whose target type is not
// implemented by the stored value. Upcast misuse is a programmer error,
// caught at the first call in any test run; it is never returned.
var ErrBadUpcast = errors.New("shared: upcast target not implemented by value")

// Option configures a handle at construction via functional arguments.
type Option func(*config)

type config struct {
	tracer trace.Tracer
}

func defaultConfig() config {
	return config{tracer: trace.Nop()}
}

// WithTracer attaches a lifecycle observer to the control block. The
// tracer sees Alloc once per New/Reset, Retain/Release per count change,
// Free at the 1→0 transition, and CastHit/CastMiss from the cast
// functions. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}
