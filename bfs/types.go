// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/csrpath/core"
	"github.com/katalvlaran/csrpath/path"
)

// Sentinel errors for BFS execution.
var (
	// ErrInvalidSource is returned when the source index is out of range.
	ErrInvalidSource = errors.New("bfs: source vertex out of range")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	OnEnqueue func(v core.VertexIndex, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v core.VertexIndex, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v core.VertexIndex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each stored edge curr→neighbor with its weight.
	FilterNeighbor func(curr, neighbor core.VertexIndex, w float64) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth
// limit, no filtering and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.VertexIndex, int) {},
		OnDequeue:      func(core.VertexIndex, int) {},
		OnVisit:        func(core.VertexIndex, int) error { return nil },
		FilterNeighbor: func(_, _ core.VertexIndex, _ float64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v core.VertexIndex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v core.VertexIndex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v core.VertexIndex, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexIndex, w float64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Order lists vertices in visit sequence.
	Order []core.VertexIndex

	// Hops holds hop counts and BFS-tree parents.
	Hops *core.DistanceArray
}

// Depth returns the hop count of v, or -1 if v was not reached.
func (r *BFSResult) Depth(v core.VertexIndex) int {
	if !r.Hops.Reachable(v) {
		return -1
	}

	return int(r.Hops.Distances[v])
}

// PathTo reconstructs the fewest-hop path from the source to dest.
// Errors are those of path.Reconstruct.
func (r *BFSResult) PathTo(dest core.VertexIndex) ([]core.VertexIndex, error) {
	return path.Reconstruct(r.Hops, dest)
}
