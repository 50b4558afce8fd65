// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// build.go — two-pass counting-sort CSR construction.
//
// Determinism:
//   • Degree counts are sums, identical for every chunking.
//   • The scatter pass is sequential in input order, so row contents are
//     reproducible and follow the (expanded) input order.
//   • Validation errors report the lowest failing edge position.

package builder

import (
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csrpath/core"
)

const methodBuild = "Build"

// Build constructs a CSR graph over vertices 0..n-1 from the parallel edge
// columns sources and destinations.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. 0 <= n <= core.MaxVertices (ErrVertexCount).
//  3. len(sources) == len(destinations), and the weight column, if any,
//     has the same length (ErrLengthMismatch).
//  4. Every endpoint < n (ErrVertexOutOfRange) and every weight finite
//     (ErrInvalidWeight); the first failing position is reported.
//
// Self-loops and parallel edges are kept. Vertices with no outgoing edge
// get an empty row.
//
// Complexity:
//   - Time:  O(n + m).
//   - Space: O(n + m) for the result, O(n) scratch.
func Build(n int, sources, destinations []core.VertexIndex, opts ...Option) (*core.CSRGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if n < 0 || int64(n) > core.MaxVertices {
		return nil, fmt.Errorf("%s: n=%d not in [0,%d]: %w", methodBuild, n, core.MaxVertices, ErrVertexCount)
	}
	if len(sources) != len(destinations) {
		return nil, fmt.Errorf("%s: %d sources, %d destinations: %w",
			methodBuild, len(sources), len(destinations), ErrLengthMismatch)
	}
	if o.Weights != nil && len(o.Weights) != len(sources) {
		return nil, fmt.Errorf("%s: %d weights for %d edges: %w",
			methodBuild, len(o.Weights), len(sources), ErrLengthMismatch)
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	b := &csrBuild{
		n:     n,
		src:   sources,
		dst:   destinations,
		ws:    o.Weights,
		defW:  o.DefaultWeight,
		undir: o.Undirected,
	}

	// Pass 1: validate and count.
	degrees, err := b.countDegrees(o)
	if err != nil {
		return nil, err
	}

	// Prefix sums.
	offsets := make([]uint64, n+1)
	for v := 0; v < n; v++ {
		offsets[v+1] = offsets[v] + degrees[v]
	}

	// Pass 2: scatter.
	neighbors, weights := b.scatter(offsets)

	g, err := core.NewCSR(offsets, neighbors, weights, !o.Undirected)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", methodBuild, core.ErrInternalConsistency, err)
	}

	return g, nil
}

// csrBuild holds the read-only inputs shared by both passes.
type csrBuild struct {
	n     int
	src   []core.VertexIndex
	dst   []core.VertexIndex
	ws    []float64
	defW  float64
	undir bool
}

// weight returns the weight of input edge k.
func (b *csrBuild) weight(k int) float64 {
	if b.ws == nil {
		return b.defW
	}

	return b.ws[k]
}

// check validates input edge k.
func (b *csrBuild) check(k int) error {
	if int(b.src[k]) >= b.n {
		return fmt.Errorf("%s: edge %d: source %d >= n=%d: %w", methodBuild, k, b.src[k], b.n, ErrVertexOutOfRange)
	}
	if int(b.dst[k]) >= b.n {
		return fmt.Errorf("%s: edge %d: destination %d >= n=%d: %w", methodBuild, k, b.dst[k], b.n, ErrVertexOutOfRange)
	}
	if w := b.weight(k); math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%s: edge %d: weight %v: %w", methodBuild, k, w, ErrInvalidWeight)
	}

	return nil
}

// countDegrees validates every edge and returns the out-degree of each
// vertex in the stored (possibly expanded) graph. Chunks run concurrently
// and add into shared atomic counters.
func (b *csrBuild) countDegrees(o Options) ([]uint64, error) {
	counters := make([]atomic.Uint64, b.n)
	spans := split(len(b.src), o.Parallelism)
	failures := make([]error, len(spans))

	g, ctx := errgroup.WithContext(o.Ctx)
	for i, sp := range spans {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for k := sp.lo; k < sp.hi; k++ {
				if err := b.check(k); err != nil {
					// Recorded, not returned: the lowest chunk must win.
					failures[i] = err
					return nil
				}
				counters[b.src[k]].Add(1)
				if b.undir {
					counters[b.dst[k]].Add(1)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range failures {
		if err != nil {
			return nil, err
		}
	}

	degrees := make([]uint64, b.n)
	for v := range counters {
		degrees[v] = counters[v].Load()
	}

	return degrees, nil
}

// scatter places every (expanded) edge into its row using a per-vertex
// write cursor initialised from offsets.
func (b *csrBuild) scatter(offsets []uint64) ([]core.VertexIndex, []float64) {
	m := offsets[b.n]
	neighbors := make([]core.VertexIndex, m)
	weights := make([]float64, m)
	cursor := make([]uint64, b.n)
	copy(cursor, offsets[:b.n])

	for k := range b.src {
		u, v, w := b.src[k], b.dst[k], b.weight(k)
		neighbors[cursor[u]], weights[cursor[u]] = v, w
		cursor[u]++
		if b.undir {
			neighbors[cursor[v]], weights[cursor[v]] = u, w
			cursor[v]++
		}
	}

	return neighbors, weights
}

// span is a half-open range [lo, hi) of edge positions.
type span struct{ lo, hi int }

// split cuts [0, n) into at most k contiguous spans of near-equal size.
func split(n, k int) []span {
	if n == 0 {
		return nil
	}
	if k > n {
		k = n
	}
	size := (n + k - 1) / k
	spans := make([]span, 0, k)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{lo: lo, hi: min(lo+size, n)})
	}

	return spans
}
