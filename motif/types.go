// Package motif provides options and error definitions for the
// significance engine.
package motif

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for significance evaluation.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("motif: graph is nil")

	// ErrBadEnsembleSize is returned when the ensemble size is < 1.
	ErrBadEnsembleSize = errors.New("motif: ensemble size must be at least 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("motif: invalid option supplied")

	// ErrPatternMismatch is returned by FindPattern when graph and pattern
	// disagree on directedness.
	ErrPatternMismatch = errors.New("motif: graph and pattern directedness differ")
)

// DefaultEnsembleSize is the ensemble size used when WithEnsembleSize is
// not given.
const DefaultEnsembleSize = 100

// DefaultSeed seeds the base RNG when neither WithSeed nor WithRand is
// given, keeping unconfigured runs reproducible.
const DefaultSeed int64 = 1

// nullMode selects the randomization strategy for ensemble members.
type nullMode int

const (
	modeRewire  nullMode = iota // preserve the full degree sequence
	modeShuffle                 // preserve edge count only
)

// Option configures significance evaluation via functional arguments.
type Option func(*Options)

// Options holds parameters customizing one Evaluate (or FindPattern) call.
type Options struct {
	// Ctx allows cancellation; checked per ensemble member and forwarded
	// to enumeration.
	Ctx context.Context

	// EnsembleSize is the number of randomized graphs to census.
	EnsembleSize int

	// Rand is the base RNG dealing per-member seeds; never nil after
	// DefaultOptions.
	Rand *rand.Rand

	// Mode selects the null model (degree-preserving by default).
	mode nullMode

	// MinCount drops classes whose real count is below it (default 1).
	MinCount int

	// Workers is the number of goroutines censusing ensemble members.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with documented deterministic defaults:
//   - context.Background()
//   - ensemble size DefaultEnsembleSize
//   - base RNG seeded with DefaultSeed
//   - degree-preserving null model
//   - MinCount 1 (keep every observed class)
//   - one worker (serial)
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		EnsembleSize: DefaultEnsembleSize,
		Rand:         rand.New(rand.NewSource(DefaultSeed)),
		mode:         modeRewire,
		MinCount:     1,
		Workers:      1,
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEnsembleSize sets the number of randomized graphs (must be ≥ 1).
func WithEnsembleSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadEnsembleSize, n)

			return
		}
		o.EnsembleSize = n
	}
}

// WithRand provides an explicit base RNG; nil is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)

			return
		}
		o.Rand = r
	}
}

// WithSeed replaces the base RNG with one seeded deterministically.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithEdgeShuffle selects the edge-count-preserving null model instead of
// the default degree-preserving rewiring.
func WithEdgeShuffle() Option {
	return func(o *Options) { o.mode = modeShuffle }
}

// WithMinCount drops report classes whose real count is below n (≥ 1).
func WithMinCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MinCount must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.MinCount = n
	}
}

// WithWorkers processes ensemble members on n goroutines (≥ 1). The seed
// schedule and fold order are unaffected, so results match serial runs.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
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
