// Package shared provides a reference-counted ownership handle over a
// heap-allocated value, with safe casting between static views.
//
// 🚀 What is shared?
//
//	Handle[T] aliases an owned value through a control block holding a
//	use-count. Cloning a handle increments the count; releasing one
//	decrements it. The value is disposed exactly once, when the count
//	transitions from 1 to 0, and the control block is freed with it.
//
//	Control block state machine:
//
//	    Live(n≥1) ──clone──▶ Live(n+1)
//	    Live(n≥2) ──release─▶ Live(n−1)
//	    Live(1)   ──release─▶ Freed (terminal)
//
// ✨ Key guarantees:
//   - use-count always equals the number of live aliasing handles
//   - no double-free and no leak: exactly one disposal per allocation
//   - Upcast always succeeds and produces a counted sibling view
//   - Downcast checks the concrete type: a counted sibling on a hit,
//     an empty handle with the count untouched on a miss
//
// ⚙️ Usage:
//
//	base := shared.New[Animal](&Dog{})      // count = 1
//	more := base.Clone()                    // count = 2
//	dog, ok := shared.Downcast[*Dog](more)  // count = 3, ok = true
//	dog.Release()
//	more.Release()
//	base.Release()                          // Dog disposed here
//
// Counting is a plain ordered integer: the ownership model is
// single-threaded and synchronous. Concurrent sharing would require an
// atomically-updated count, which is an extension beyond this package.
package shared
