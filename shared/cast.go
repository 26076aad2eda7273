package shared

import (
	"fmt"
	"reflect"
)

// Upcast reinterprets a derived-typed handle as a view of its base
// capability set B (an interface implemented by D). The cast always
// succeeds for a correct B; the result is a new counted sibling handle
// aliasing the same control block, and the original handle stays live
// and must be released independently.
//
// Passing a B the stored value does not implement is a programmer
// error: Upcast panics with ErrBadUpcast rather than inventing a
// runtime failure mode for a statically-decidable mistake.
// Upcasting an empty handle yields an empty handle.
func Upcast[B, D any](h *Handle[D]) *Handle[B] {
	if h.Empty() {
		return &Handle[B]{}
	}

	b, ok := any(h.val).(B)
	if !ok {
		panic(fmt.Errorf("%w: %T does not implement %v",
			ErrBadUpcast, h.val, reflect.TypeOf((*B)(nil)).Elem()))
	}

	h.ctrl.retain()
	h.ctrl.tracer.CastHit(h.ctrl.id)

	return &Handle[B]{val: b, ctrl: h.ctrl}
}

// Downcast attempts to reinterpret a base-typed handle as a view of the
// concrete variant D. On a hit it returns a new counted sibling handle
// aliasing the same control block and true. On a miss (the stored value
// is some other variant) it returns an empty handle and false, leaving
// the use-count unchanged: no new live handle was produced. A miss is a
// recoverable "no match" outcome, never a failure.
func Downcast[D, B any](h *Handle[B]) (*Handle[D], bool) {
	if h.Empty() {
		return &Handle[D]{}, false
	}

	d, ok := any(h.val).(D)
	if !ok {
		h.ctrl.tracer.CastMiss(h.ctrl.id)

		return &Handle[D]{}, false
	}

	h.ctrl.retain()
	h.ctrl.tracer.CastHit(h.ctrl.id)

	return &Handle[D]{val: d, ctrl: h.ctrl}, true
}
