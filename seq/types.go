// Package seq defines options and error sentinels for the slice helpers.
package seq

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors. Branch with errors.Is; messages are part of the
// public contract.
var (
	// ErrBadSize is returned for non-positive fill sizes.
	ErrBadSize = errors.New("seq: invalid size")

	// ErrNeedRandSource is returned when Randomize runs without an RNG.
	// Supply WithRand or WithSeed; stochastic helpers never self-seed.
	ErrNeedRandSource = errors.New("seq: rng is required")

	// ErrOptionViolation is returned when an option received a
	// meaningless value (nil RNG, bound < 1).
	ErrOptionViolation = errors.New("seq: invalid option value")
)

// Integer is the element constraint for Fill and Randomize.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Option configures Randomize via functional arguments. An invalid
// option is recorded internally and surfaced as ErrOptionViolation when
// the helper runs.
type Option func(*options)

type options struct {
	rng   *rand.Rand
	bound int
	err   error
}

// defaultOptions: bound 10 (the classic modulo-ten demo), no RNG —
// callers must opt in to a source explicitly.
func defaultOptions() options {
	return options{bound: 10}
}

// WithRand supplies the random source. A nil source is an option
// violation rather than a silent fallback.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)

			return
		}
		o.rng = r
	}
}

// WithSeed supplies a deterministic random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBound caps generated values to [0, b).
//
//	b >= 1: values drawn below b
//	b < 1:  invalid option, surfaced as ErrOptionViolation
func WithBound(b int) Option {
	return func(o *options) {
		if b < 1 {
			o.err = fmt.Errorf("%w: bound must be positive (%d)", ErrOptionViolation, b)

			return
		}
		o.bound = b
	}
}
