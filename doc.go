// Package ownptr is a small playground for explicit ownership of
// heap-allocated values — exclusive handles, reference-counted handles,
// and safe movement between static views of one owned value.
//
// 🚀 What is ownptr?
//
//	A modern, documented library that brings together:
//		• unique/ — exclusive-ownership handles: one live owner, move-only transfer
//		• shared/ — reference-counted handles over a shared control block
//		• casts:    static upcast and checked downcast between handle views
//		• trace/  — injectable lifecycle observer (no-op, ledger, zap adapter)
//		• seq/    — generic slice helpers used by the demo (fill, randomize, find, print)
//
// ✨ Why choose ownptr?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every create is paired with exactly one release path
//   - Observable – hook Alloc/Retain/Release/Free events for tests or logs
//   - Extensible – functional options on every constructor
//
// Under the hood, everything is organized under four subpackages:
//
//	unique/ — Handle[T] with sole ownership: New, Reset, MoveTo, Release
//	shared/ — Handle[T] with use-counting: New, Clone, Release, Upcast, Downcast
//	trace/  — Tracer interface, counting Ledger, zap-backed tracer
//	seq/    — Fill, Randomize, FindFirst, PrintValues
//
// Quick sketch:
//
//	a := shared.New[Animal](&Dog{})   // count = 1
//	b := a.Clone()                    // count = 2
//	d, ok := shared.Downcast[*Dog](b) // count = 3, ok = true
//	... release all three, the Dog is disposed exactly once.
//
// Dive into the per-package docs for invariants, error policy, and examples,
// and into cmd/ownptr for a runnable end-to-end walkthrough.
//
//	go get github.com/ownptr/ownptr
package ownptr
