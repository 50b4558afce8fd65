// SPDX-License-Identifier: MIT
//
// File: csr.go
// Role: Immutable compressed-sparse-row graph and its read-only accessors.
// Determinism:
//   - Neighbor order inside a row is exactly the order the builder scattered it.
// Concurrency:
//   - No locks: the value is immutable after NewCSR, so concurrent reads are safe.

package core

import (
	"fmt"
	"math"
)

// CSRGraph is an immutable adjacency structure over dense vertex indices
// 0..n-1. Row i is neighbors[offsets[i]:offsets[i+1]] with parallel weights.
type CSRGraph struct {
	offsets   []uint64      // n+1 row boundaries
	neighbors []VertexIndex // m edge heads
	weights   []float64     // m edge weights, parallel to neighbors
	directed  bool          // false if every edge was stored in both directions
}

// NewCSR validates the three CSR arrays and wraps them in a CSRGraph.
// Ownership of the slices passes to the graph; the caller must not modify
// them afterwards. directed records how the arrays were produced and is
// informational only: an undirected graph is stored with both directions.
//
// Errors:
//   - ErrMalformedCSR (wrapped with the violated invariant) on any mismatch.
//
// Complexity: O(n + m) time, O(1) extra space.
func NewCSR(offsets []uint64, neighbors []VertexIndex, weights []float64, directed bool) (*CSRGraph, error) {
	g := &CSRGraph{
		offsets:   offsets,
		neighbors: neighbors,
		weights:   weights,
		directed:  directed,
	}
	if err := g.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSR, err)
	}

	return g, nil
}

// validate checks every CSR invariant and reports the first violation.
func (g *CSRGraph) validate() error {
	if len(g.offsets) == 0 {
		return fmt.Errorf("offsets is empty, want n+1 >= 1 entries")
	}
	n := len(g.offsets) - 1
	if int64(n) > MaxVertices {
		return fmt.Errorf("n=%d exceeds MaxVertices=%d", n, MaxVertices)
	}
	m := len(g.neighbors)
	if len(g.weights) != m {
		return fmt.Errorf("len(weights)=%d != len(neighbors)=%d", len(g.weights), m)
	}
	if g.offsets[0] != 0 {
		return fmt.Errorf("offsets[0]=%d, want 0", g.offsets[0])
	}
	if g.offsets[n] != uint64(m) {
		return fmt.Errorf("offsets[n]=%d, want m=%d", g.offsets[n], m)
	}
	for i := 1; i <= n; i++ {
		if g.offsets[i] < g.offsets[i-1] {
			return fmt.Errorf("offsets decrease at %d: %d < %d", i, g.offsets[i], g.offsets[i-1])
		}
	}
	for k, v := range g.neighbors {
		if int(v) >= n {
			return fmt.Errorf("neighbors[%d]=%d >= n=%d", k, v, n)
		}
	}

	return nil
}

// Validate re-checks the CSR invariants. A graph built by NewCSR always
// passes; a failure here wraps ErrInternalConsistency.
func (g *CSRGraph) Validate() error {
	if err := g.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInternalConsistency, err)
	}

	return nil
}

// NumVertices returns n.
func (g *CSRGraph) NumVertices() int { return len(g.offsets) - 1 }

// NumEdges returns m, the number of stored (directed) edge slots.
// An undirected input edge occupies two slots.
func (g *CSRGraph) NumEdges() int { return len(g.neighbors) }

// Directed reports whether edges were stored in one direction only.
func (g *CSRGraph) Directed() bool { return g.directed }

// HasVertex reports whether v is a valid index for this graph.
func (g *CSRGraph) HasVertex(v VertexIndex) bool {
	return v != NoVertex && int(v) < g.NumVertices()
}

// Row returns the neighbor and weight views of vertex v without bounds
// checking beyond Go's own. Callers must guarantee HasVertex(v); the hot
// loops of the search packages use it after validating the source once.
func (g *CSRGraph) Row(v VertexIndex) ([]VertexIndex, []float64) {
	lo, hi := g.offsets[v], g.offsets[v+1]

	return g.neighbors[lo:hi], g.weights[lo:hi]
}

// Neighbors returns the read-only neighbor and weight views of vertex v.
//
// Errors:
//   - ErrVertexOutOfRange if v >= n.
//
// Complexity: O(1).
func (g *CSRGraph) Neighbors(v VertexIndex) ([]VertexIndex, []float64, error) {
	if !g.HasVertex(v) {
		return nil, nil, fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, v, g.NumVertices())
	}
	nbrs, ws := g.Row(v)

	return nbrs, ws, nil
}

// OutDegree returns the number of stored edges leaving v.
func (g *CSRGraph) OutDegree(v VertexIndex) (int, error) {
	if !g.HasVertex(v) {
		return 0, fmt.Errorf("%w: %d (n=%d)", ErrVertexOutOfRange, v, g.NumVertices())
	}

	return int(g.offsets[v+1] - g.offsets[v]), nil
}

// EdgeWeight returns the lightest weight among the parallel edges u→v.
// ok is false if u or v is out of range or no such edge exists.
//
// Complexity: O(deg(u)).
func (g *CSRGraph) EdgeWeight(u, v VertexIndex) (w float64, ok bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return 0, false
	}
	w = math.Inf(1)
	nbrs, ws := g.Row(u)
	for k, x := range nbrs {
		if x == v && ws[k] < w {
			w, ok = ws[k], true
		}
	}

	return w, ok
}

// ForEachEdge calls fn for every stored edge in row order. Iteration stops
// early when fn returns false.
func (g *CSRGraph) ForEachEdge(fn func(u, v VertexIndex, w float64) bool) {
	n := g.NumVertices()
	for u := 0; u < n; u++ {
		for k := g.offsets[u]; k < g.offsets[u+1]; k++ {
			if !fn(VertexIndex(u), g.neighbors[k], g.weights[k]) {
				return
			}
		}
	}
}

// Arrays returns copies of the offsets, neighbors and weights arrays.
//
// Complexity: O(n + m) time and space.
func (g *CSRGraph) Arrays() (offsets []uint64, neighbors []VertexIndex, weights []float64) {
	offsets = append([]uint64(nil), g.offsets...)
	neighbors = append([]VertexIndex(nil), g.neighbors...)
	weights = append([]float64(nil), g.weights...)

	return offsets, neighbors, weights
}
