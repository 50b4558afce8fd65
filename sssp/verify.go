// SPDX-License-Identifier: MIT

package sssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/csrpath/core"
)

// Verify checks that da is a valid single-source shortest-path result for g
// computed without a distance cap or impassable edges:
//
//   - the arrays cover every vertex and the source has distance 0 and no predecessor;
//   - every reachable non-source vertex has a reachable predecessor p with an
//     edge p→v such that dist[p] + w(p,v) == dist[v];
//   - every unreachable vertex has no predecessor;
//   - no edge u→v can improve dist[v] (dist[v] <= dist[u] + w).
//
// Violations wrap core.ErrInternalConsistency. A negative weight wraps
// ErrNegativeWeight.
//
// Complexity: O(n + m) time, O(1) extra space.
func Verify(g *core.CSRGraph, da *core.DistanceArray) error {
	if g == nil {
		return ErrNilGraph
	}
	if da == nil {
		return fmt.Errorf("%w: nil distance array", core.ErrInternalConsistency)
	}
	n := g.NumVertices()
	if da.Len() != n || len(da.Predecessors) != n {
		return fmt.Errorf("%w: arrays cover %d/%d vertices, graph has %d",
			core.ErrInternalConsistency, len(da.Distances), len(da.Predecessors), n)
	}
	if !g.HasVertex(da.Source) {
		return fmt.Errorf("%w: source %d (n=%d)", ErrInvalidSource, da.Source, n)
	}
	if da.Distances[da.Source] != 0 || da.Predecessors[da.Source] != core.NoVertex {
		return fmt.Errorf("%w: source %d has distance %v, predecessor %v",
			core.ErrInternalConsistency, da.Source, da.Distances[da.Source], da.Predecessors[da.Source])
	}

	for i := 0; i < n; i++ {
		v := core.VertexIndex(i)
		if v == da.Source {
			continue
		}
		d, p := da.Distances[v], da.Predecessors[v]
		if math.IsInf(d, 1) {
			if p != core.NoVertex {
				return fmt.Errorf("%w: unreachable vertex %d has predecessor %d", core.ErrInternalConsistency, v, p)
			}
			continue
		}
		if !g.HasVertex(p) || !da.Reachable(p) {
			return fmt.Errorf("%w: vertex %d has invalid predecessor %v", core.ErrInternalConsistency, v, p)
		}
		w, ok := g.EdgeWeight(p, v)
		if !ok || da.Distances[p]+w != d {
			return fmt.Errorf("%w: vertex %d: dist %v not explained by predecessor %d", core.ErrInternalConsistency, v, d, p)
		}
	}

	var err error
	g.ForEachEdge(func(u, v core.VertexIndex, w float64) bool {
		if w < 0 {
			err = fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, u, v, w)
			return false
		}
		if du := da.Distances[u]; !math.IsInf(du, 1) && du+w < da.Distances[v] {
			err = fmt.Errorf("%w: edge %d→%d improves %v to %v", core.ErrInternalConsistency, u, v, da.Distances[v], du+w)
			return false
		}

		return true
	})

	return err
}
