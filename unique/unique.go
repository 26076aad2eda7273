// Package unique implements the exclusive-ownership handle.
//
// Invariant: at most one live Handle references a given owned value.
// Every constructor allocation is paired with exactly one disposal,
// triggered by Release, Reset, or being overwritten as a move target.
package unique

import "github.com/ownptr/ownptr/trace"

// Handle is the sole owner of a heap-allocated T. The zero state
// (after a move or Release) owns nothing; dereferencing it yields
// ErrNilDeref.
type Handle[T any] struct {
	val    *T
	id     uint64
	tracer trace.Tracer
}

// New allocates a fresh T from v and returns the handle bound to it.
// Construction is infallible; allocation failure is the runtime's
// out-of-memory condition, outside this package's model.
func New[T any](v T, opts ...Option) *Handle[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Handle[T]{val: &v, id: trace.NextID(), tracer: cfg.tracer}
	h.tracer.Alloc(trace.KindUnique, h.id)

	return h
}

// Empty reports whether the handle currently owns no value.
func (h *Handle[T]) Empty() bool { return h == nil || h.val == nil }

// Get returns a mutable reference to the owned value, or ErrNilDeref
// when the handle is empty.
func (h *Handle[T]) Get() (*T, error) {
	if h.Empty() {
		return nil, ErrNilDeref
	}

	return h.val, nil
}

// MustGet is Get for call sites that have already checked Empty.
// It panics with ErrNilDeref on an empty handle.
func (h *Handle[T]) MustGet() *T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// Reset disposes the currently-owned value (if any), then binds the
// handle to v. A nil v leaves the handle empty. The caller transfers
// ownership of *v: no other handle may reference it.
func (h *Handle[T]) Reset(v *T) {
	h.Release()
	if v == nil {
		return
	}

	h.val = v
	h.id = trace.NextID()
	h.tracer.Alloc(trace.KindUnique, h.id)
}

// MoveTo transfers ownership to dst: dst's previous value (if any) is
// disposed, dst takes the reference, and h becomes empty. Moving to a
// nil destination or to h itself is a no-op.
func (h *Handle[T]) MoveTo(dst *Handle[T]) {
	if h.Empty() || dst == nil || dst == h {
		return
	}

	dst.Release()
	dst.val, dst.id = h.val, h.id
	h.val, h.id = nil, 0
}

// Release disposes the owned value and empties the handle. Releasing an
// empty handle is a no-op, so Release is safe to defer unconditionally.
func (h *Handle[T]) Release() {
	if h.Empty() {
		return
	}

	disposeValue(h.val)
	h.tracer.Free(h.id)
	h.val, h.id = nil, 0
}

// disposeValue runs the value's Dispose hook when it has one, trying
// the pointer form first so pointer-receiver implementations are found.
func disposeValue[T any](v *T) {
	if d, ok := any(v).(trace.Disposer); ok {
		d.Dispose()

		return
	}
	if d, ok := any(*v).(trace.Disposer); ok {
		d.Dispose()
	}
}
