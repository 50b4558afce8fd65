// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// options.go — functional options for Build.
//
// Contract:
//   • Options mutate Options in order; later options override earlier ones.
//   • Invalid values are recorded and returned as ErrOptionViolation by Build.
//     Option constructors never panic.

package builder

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/csrpath/core"
)

// Options configures one Build call.
type Options struct {
	// Ctx allows cancellation between degree-count chunks.
	Ctx context.Context

	// Weights holds one weight per input edge; nil means DefaultWeight everywhere.
	Weights []float64

	// DefaultWeight is used when Weights is nil. Must be finite.
	DefaultWeight float64

	// Undirected stores each input edge in both directions.
	Undirected bool

	// Parallelism is the number of chunks counted concurrently (>= 1).
	Parallelism int

	err error
}

// Option configures Build.
type Option func(*Options)

// DefaultOptions returns a directed, unweighted (core.DefaultWeight),
// single-chunk configuration with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		DefaultWeight: core.DefaultWeight,
		Parallelism:   1,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeights supplies the weight column, parallel to the edge columns.
// The slice is read, not retained.
func WithWeights(ws []float64) Option {
	return func(o *Options) {
		o.Weights = ws
	}
}

// WithDefaultWeight sets the weight assigned when no weight column is given.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: default weight must be finite (%v)", ErrOptionViolation, w)
			return
		}
		o.DefaultWeight = w
	}
}

// WithUndirected expands every edge u-v into u→v followed by v→u.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

// WithParallelism sets the number of concurrent degree-count chunks.
func WithParallelism(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: parallelism must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Parallelism = k
	}
}
