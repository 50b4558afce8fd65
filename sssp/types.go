// SPDX-License-Identifier: MIT

package sssp

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/csrpath/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.CSRGraph was passed.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrInvalidSource indicates a source index outside 0..n-1.
	ErrInvalidSource = errors.New("sssp: source vertex out of range")

	// ErrNegativeWeight indicates a negative edge weight encountered during relaxation.
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("sssp: invalid option supplied")
)

// Frontier selects the priority-queue implementation.
type Frontier int

const (
	// FrontierBinaryHeap is a lazy binary heap ordered by (distance, index).
	FrontierBinaryHeap Frontier = iota

	// FrontierIndexed is an indexed heap with in-place decrease-key.
	FrontierIndexed
)

// String returns "binary-heap" or "indexed".
func (f Frontier) String() string {
	switch f {
	case FrontierBinaryHeap:
		return "binary-heap"
	case FrontierIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("Frontier(%d)", int(f))
	}
}

// ParseFrontier maps "binary-heap" (or "") and "indexed" to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch s {
	case "", "binary-heap":
		return FrontierBinaryHeap, nil
	case "indexed":
		return FrontierIndexed, nil
	default:
		return 0, fmt.Errorf("%w: unknown frontier %q", ErrOptionViolation, s)
	}
}

// Options configures one query.
//
// MaxDistance      – vertices whose distance would exceed it stay unreachable.
//
//	Must be >= 0. Default +Inf (no cap).
//
// InfEdgeThreshold – edges with weight >= threshold are skipped.
//
//	Must be > 0. Default +Inf (every finite edge is traversable).
type Options struct {
	Ctx              context.Context
	Frontier         Frontier
	MaxDistance      float64
	InfEdgeThreshold float64

	// OnSettle is called once per settled vertex with its final distance.
	// Returning an error aborts the query with that error.
	OnSettle func(v core.VertexIndex, dist float64) error

	err error
}

// Option configures a query via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the query starts.
type Option func(*Options)

// DefaultOptions returns the binary-heap frontier with no distance cap,
// no impassable edges, no hook and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Frontier:         FrontierBinaryHeap,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
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

// WithFrontier selects the frontier implementation.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		switch f {
		case FrontierBinaryHeap, FrontierIndexed:
			o.Frontier = f
		default:
			o.err = fmt.Errorf("%w: unknown frontier %d", ErrOptionViolation, int(f))
		}
	}
}

// WithMaxDistance caps exploration at distance d (d >= 0).
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) || d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be >= 0 (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges with weight >= t as impassable (t > 0).
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) || t <= 0 {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be > 0 (%v)", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// WithOnSettle registers a hook called once per settled vertex.
func WithOnSettle(fn func(v core.VertexIndex, dist float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
