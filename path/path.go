// SPDX-License-Identifier: MIT

package path

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/csrpath/core"
)

var (
	// ErrNilDistances indicates a nil distance array.
	ErrNilDistances = errors.New("path: distance array is nil")

	// ErrTargetOutOfRange indicates a target index outside 0..n-1.
	ErrTargetOutOfRange = errors.New("path: target vertex out of range")

	// ErrUnreachable indicates that no path from the source reaches the target.
	ErrUnreachable = errors.New("path: target unreachable from source")

	// ErrNoEdge indicates two consecutive path vertices without an edge between them.
	ErrNoEdge = errors.New("path: no edge between consecutive vertices")
)

// Reconstruct returns the shortest path from da.Source to target, both
// inclusive. For target == da.Source the path is [source].
//
// Complexity: O(path length) time and space.
func Reconstruct(da *core.DistanceArray, target core.VertexIndex) ([]core.VertexIndex, error) {
	if da == nil {
		return nil, ErrNilDistances
	}
	n := da.Len()
	if len(da.Predecessors) != n {
		return nil, fmt.Errorf("%w: %d distances, %d predecessors",
			core.ErrInternalConsistency, n, len(da.Predecessors))
	}
	if int(target) >= n {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrTargetOutOfRange, target, n)
	}
	if math.IsInf(da.Distances[target], 1) {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, target, da.Source)
	}

	out := []core.VertexIndex{target}
	for cur := target; cur != da.Source; {
		p := da.Predecessors[cur]
		if p == core.NoVertex || int(p) >= n {
			return nil, fmt.Errorf("%w: walk from %d stops at %d (predecessor %v), not at source %d",
				core.ErrInternalConsistency, target, cur, p, da.Source)
		}
		if len(out) >= n {
			return nil, fmt.Errorf("%w: predecessor walk from %d exceeds %d steps",
				core.ErrInternalConsistency, target, n)
		}
		out = append(out, p)
		cur = p
	}
	slices.Reverse(out)

	return out, nil
}

// Weight returns the total weight of p in g, using the lightest parallel
// edge for each hop. A path of zero or one vertex weighs 0.
//
// Errors:
//   - ErrNoEdge (wrapped with the hop) if some p[i]→p[i+1] is not an edge of g.
func Weight(g *core.CSRGraph, p []core.VertexIndex) (float64, error) {
	total := 0.0
	for i := 0; i+1 < len(p); i++ {
		w, ok := g.EdgeWeight(p[i], p[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: hop %d: %d→%d", ErrNoEdge, i, p[i], p[i+1])
		}
		total += w
	}

	return total, nil
}
