// Package unique provides an exclusive-ownership handle over a
// heap-allocated value.
//
// 🚀 What is unique?
//
//	Handle[T] is the sole owner of its value. At most one live handle
//	references a given value at any time. Ownership is transferred by
//	move (MoveTo) — never duplicated — and the value is disposed when
//	its handle is released, reset, or overwritten by a move.
//
// ✨ Key guarantees:
//   - one live owner: no operation produces two handles to one value
//   - move empties the source; dereferencing it afterwards fails
//   - Release/Reset dispose the current value exactly once
//   - disposal runs the value's Dispose hook (trace.Disposer), outermost
//     cleanup first when types are composed
//
// ⚙️ Usage:
//
//	h := unique.New(Buffer{Size: 64})
//	b, err := h.Get()        // *Buffer, or ErrNilDeref when empty
//	dst := unique.New(Buffer{})
//	h.MoveTo(dst)            // dst's old Buffer disposed; h now empty
//	dst.Release()            // dispose; pairs the New above
//
// Errors follow the sentinel policy: branch with errors.Is(err, ErrNilDeref).
// Allocation failure is Go's runtime out-of-memory condition and is not
// modeled by this package.
package unique
