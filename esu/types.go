// Package esu provides options and error definitions for connected
// subgraph enumeration over a core.Graph.
package esu

import (
	"context"
	"errors"
)

// Sentinel errors for enumeration.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("esu: graph is nil")

	// ErrBadMotifSize is returned when k < 2; a motif needs at least one edge.
	ErrBadMotifSize = errors.New("esu: motif size must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("esu: invalid option supplied")
)

// Option configures enumeration behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing an enumeration pass.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frame pop.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
		err: nil,
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
