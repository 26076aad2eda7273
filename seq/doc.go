// Package seq provides the generic slice helpers used by the ownptr
// demonstration: ascending fills, seeded random mutation, first-match
// predicate search, and variadic value printing.
//
// 🚀 What is seq?
//
//	Four small, single-pass operations over generic slices:
//	  • Fill       — build [0, 1, ..., n-1] for any integer element type
//	  • Randomize  — overwrite every element with a random value below a bound
//	  • FindFirst  — locate the first element matching a predicate
//	  • PrintValues — print a variadic argument list, one value per line
//
// ⚙️ Usage:
//
//	vals, err := seq.Fill[int](20)
//	err = seq.Randomize(vals, seq.WithSeed(1), seq.WithBound(10))
//	v, idx, ok := seq.FindFirst(vals, seq.Even[int])
//
// Stochastic helpers never self-seed: Randomize without WithRand or
// WithSeed returns ErrNeedRandSource, keeping every run reproducible on
// purpose rather than by accident. Output goes through an injected
// io.Writer so callers and tests assert it directly.
package seq
