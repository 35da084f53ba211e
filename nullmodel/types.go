// Package nullmodel provides options and error definitions for randomized
// reference-graph generation.
package nullmodel

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for null-model generation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("nullmodel: graph is nil")

	// ErrDegenerate is returned when the randomization budget expires
	// before the requested invariant can be satisfied. The wrapped message
	// names the failing invariant.
	ErrDegenerate = errors.New("nullmodel: constraints unsatisfiable within retry budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nullmodel: invalid option supplied")
)

// Deterministic defaults (named, no magic literals).
const (
	// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is
	// given, keeping unconfigured runs reproducible.
	DefaultSeed int64 = 1

	// defaultSwapFactor targets 3·|E| successful swaps (mfinder default).
	defaultSwapFactor = 3

	// defaultMaxAttemptsFactor allows 10 attempts per required swap
	// before declaring the graph degenerate.
	defaultMaxAttemptsFactor = 10

	// shuffleDrawFactor bounds Shuffle at 100 random pair draws per edge.
	shuffleDrawFactor = 100

	// minShuffleDraws keeps the draw budget meaningful on tiny graphs.
	minShuffleDraws = 100
)

// Option configures null-model generation via functional arguments.
type Option func(*Options)

// Options holds parameters customizing one generation call.
type Options struct {
	// Rand is the random source; never nil after DefaultOptions.
	Rand *rand.Rand

	// SwapFactor scales the Rewire swap target: SwapFactor·|E| swaps.
	SwapFactor int

	// MaxAttemptsFactor scales the attempt budget relative to the target.
	MaxAttemptsFactor int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with documented deterministic defaults:
//   - RNG seeded with DefaultSeed
//   - SwapFactor 3, MaxAttemptsFactor 10
func DefaultOptions() Options {
	return Options{
		Rand:              rand.New(rand.NewSource(DefaultSeed)),
		SwapFactor:        defaultSwapFactor,
		MaxAttemptsFactor: defaultMaxAttemptsFactor,
		err:               nil,
	}
}

// WithRand provides an explicit RNG; nil is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)

			return
		}
		o.Rand = r
	}
}

// WithSeed replaces the RNG with one seeded deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithSwapFactor overrides the Rewire swap target multiple (must be ≥ 1).
func WithSwapFactor(factor int) Option {
	return func(o *Options) {
		if factor < 1 {
			o.err = fmt.Errorf("%w: SwapFactor must be ≥ 1 (%d)", ErrOptionViolation, factor)

			return
		}
		o.SwapFactor = factor
	}
}

// WithMaxAttemptsFactor overrides the attempt budget multiple (must be ≥ 1).
func WithMaxAttemptsFactor(factor int) Option {
	return func(o *Options) {
		if factor < 1 {
			o.err = fmt.Errorf("%w: MaxAttemptsFactor must be ≥ 1 (%d)", ErrOptionViolation, factor)

			return
		}
		o.MaxAttemptsFactor = factor
	}
}

// resolve applies opts over defaults and surfaces recorded violations.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
