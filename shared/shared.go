// Package shared implements the reference-counted ownership handle.
//
// Invariants:
//   - a control block's use-count equals the number of live handles
//     aliasing it;
//   - the owned value is disposed exactly once, at the 1→0 transition;
//   - once freed, a control block is never revived.
package shared

import "github.com/ownptr/ownptr/trace"

// control is the shared bookkeeping record behind aliasing handles.
// Exactly one control block owns each value; handles of different static
// types (cast views) share the block.
type control struct {
	count   int64
	id      uint64
	tracer  trace.Tracer
	destroy func()
}

// retain records one more live handle and returns the new count.
func (c *control) retain() int64 {
	c.count++
	c.tracer.Retain(c.id, c.count)

	return c.count
}

// release records one fewer live handle. At zero it disposes the owned
// value and reports the block freed. No transition out of freed exists:
// every surviving handle has already detached.
func (c *control) release() {
	c.count--
	c.tracer.Release(c.id, c.count)
	if c.count == 0 {
		c.destroy()
		c.tracer.Free(c.id)
	}
}

// Handle aliases an owned value of static type T through a shared
// control block. The zero state (after Release) aliases nothing.
type Handle[T any] struct {
	val  T
	ctrl *control
}

// New allocates a fresh owned value from v with a fresh control block at
// use-count 1. For polymorphic use, store a pointer or an interface
// value so cast views and Dispose hooks can see the concrete type.
func New[T any](v T, opts ...Option) *Handle[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &control{
		count:   1,
		id:      trace.NextID(),
		tracer:  cfg.tracer,
		destroy: func() { disposeValue(v) },
	}
	c.tracer.Alloc(trace.KindShared, c.id)

	return &Handle[T]{val: v, ctrl: c}
}

// Empty reports whether the handle currently aliases no value.
func (h *Handle[T]) Empty() bool { return h == nil || h.ctrl == nil }

// Get returns the aliased value, or ErrNilDeref when the handle is empty.
func (h *Handle[T]) Get() (T, error) {
	if h.Empty() {
		var zero T

		return zero, ErrNilDeref
	}

	return h.val, nil
}

// MustGet is Get for call sites that have already checked Empty.
// It panics with ErrNilDeref on an empty handle.
func (h *Handle[T]) MustGet() T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}

	return v
}

// UseCount reports how many live handles alias the control block.
// Observational only; 0 for an empty handle.
func (h *Handle[T]) UseCount() int64 {
	if h.Empty() {
		return 0
	}

	return h.ctrl.count
}

// Clone returns a new handle aliasing the same value and increments the
// use-count. Cloning an empty handle yields another empty handle.
func (h *Handle[T]) Clone() *Handle[T] {
	if h.Empty() {
		return &Handle[T]{}
	}

	h.ctrl.retain()

	return &Handle[T]{val: h.val, ctrl: h.ctrl}
}

// Release detaches the handle from its control block, decrementing the
// use-count and disposing the value at the 1→0 transition. Releasing an
// empty handle is a no-op, so Release is safe to defer unconditionally.
func (h *Handle[T]) Release() {
	if h.Empty() {
		return
	}

	c := h.ctrl
	h.ctrl = nil

	var zero T
	h.val = zero

	c.release()
}

// Reset releases the current value (if any), then binds the handle to a
// fresh owned value with a fresh control block at use-count 1. The new
// block inherits the released block's tracer when one exists.
func (h *Handle[T]) Reset(v T) {
	tracer := trace.Nop()
	if !h.Empty() {
		tracer = h.ctrl.tracer
	}
	h.Release()

	c := &control{
		count:   1,
		id:      trace.NextID(),
		tracer:  tracer,
		destroy: func() { disposeValue(v) },
	}
	c.tracer.Alloc(trace.KindShared, c.id)

	h.val = v
	h.ctrl = c
}

// disposeValue runs the value's Dispose hook when it has one. The value
// form covers interface and pointer values; the address form catches
// pointer-receiver hooks on directly stored structs.
func disposeValue[T any](v T) {
	if d, ok := any(v).(trace.Disposer); ok {
		d.Dispose()

		return
	}
	if d, ok := any(&v).(trace.Disposer); ok {
		d.Dispose()
	}
}
