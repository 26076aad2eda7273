// Package seq implements the slice helpers: fill, randomize, find, print.
package seq

import (
	"fmt"
	"io"
)

// Fill returns a slice of n ascending values 0, 1, ..., n-1.
// Returns ErrBadSize when n < 1.
func Fill[T Integer](n int) ([]T, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be positive (%d)", ErrBadSize, n)
	}

	s := make([]T, n)
	for i := range s {
		s[i] = T(i)
	}

	return s, nil
}

// Randomize overwrites every element of s with a random value in
// [0, bound). The bound defaults to 10; the random source is required
// (WithRand or WithSeed) and its absence returns ErrNeedRandSource.
func Randomize[T Integer](s []T, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if o.rng == nil {
		return ErrNeedRandSource
	}

	for i := range s {
		s[i] = T(o.rng.Intn(o.bound))
	}

	return nil
}

// FindFirst returns the first element of s matching pred, its index,
// and true. When nothing matches it returns the zero value, -1, false.
func FindFirst[T any](s []T, pred func(T) bool) (T, int, bool) {
	for i, v := range s {
		if pred(v) {
			return v, i, true
		}
	}

	var zero T

	return zero, -1, false
}

// Even reports whether v is an even number; the demo's classic predicate.
func Even[T Integer](v T) bool { return v%2 == 0 }

// PrintValues prints each value on its own line, consuming the variadic
// argument list recursively until the empty call prints a closing line.
func PrintValues(w io.Writer, vals ...any) error {
	if len(vals) == 0 {
		_, err := fmt.Fprintln(w, "no values left to print")

		return err
	}

	if _, err := fmt.Fprintln(w, vals[0]); err != nil {
		return err
	}

	return PrintValues(w, vals[1:]...)
}
