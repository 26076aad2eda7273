// Package unique defines options and error sentinels for the
// exclusive-ownership handle.
package unique

import (
	"errors"

	"github.com/ownptr/ownptr/trace"
)

// ErrNilDeref is returned when dereferencing an empty handle.
// Usage: if errors.Is(err, unique.ErrNilDeref) { /* handle was empty */ }.
var ErrNilDeref = errors.New("unique: dereference of empty handle")

// Option configures a handle at construction via functional arguments.
type Option func(*config)

type config struct {
	tracer trace.Tracer
}

func defaultConfig() config {
	return config{tracer: trace.Nop()}
}

// WithTracer attaches a lifecycle observer to the handle. The tracer
// sees Alloc on New/Reset and Free on disposal. A nil tracer is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}
