// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Per-query result of a single-source search.

package core

import "math"

// DistanceArray is the output of one single-source query: two parallel
// sequences indexed by VertexIndex. It is owned by the caller that ran the
// query and is never shared with the engine afterwards.
//
// For the source, Distances[source] == 0 and Predecessors[source] == NoVertex.
// For an unreachable v, Distances[v] is +Inf and Predecessors[v] is NoVertex.
// For any other v, Predecessors[v] is the vertex settled immediately before v
// on the reported shortest path.
type DistanceArray struct {
	Source       VertexIndex
	Distances    []float64
	Predecessors []VertexIndex
}

// NewDistanceArray allocates an array for n vertices with every vertex
// unreachable except source, which is set to distance 0.
// The caller guarantees source < n.
func NewDistanceArray(n int, source VertexIndex) *DistanceArray {
	da := &DistanceArray{
		Source:       source,
		Distances:    make([]float64, n),
		Predecessors: make([]VertexIndex, n),
	}
	inf := math.Inf(1)
	for i := range da.Distances {
		da.Distances[i] = inf
		da.Predecessors[i] = NoVertex
	}
	da.Distances[source] = 0

	return da
}

// Len returns the number of vertices covered.
func (da *DistanceArray) Len() int { return len(da.Distances) }

// Reachable reports whether v has a finite distance.
func (da *DistanceArray) Reachable(v VertexIndex) bool {
	return int(v) < len(da.Distances) && !math.IsInf(da.Distances[v], 1)
}

// Distance returns the distance of v, or +Inf if v is out of range.
func (da *DistanceArray) Distance(v VertexIndex) float64 {
	if int(v) >= len(da.Distances) {
		return math.Inf(1)
	}

	return da.Distances[v]
}

// Predecessor returns the predecessor of v; ok is false for the source,
// unreachable vertices, and out-of-range indices.
func (da *DistanceArray) Predecessor(v VertexIndex) (p VertexIndex, ok bool) {
	if int(v) >= len(da.Predecessors) {
		return NoVertex, false
	}
	p = da.Predecessors[v]

	return p, p != NoVertex
}

// ReachableCount returns the number of vertices with a finite distance,
// the source included.
func (da *DistanceArray) ReachableCount() int {
	c := 0
	for _, d := range da.Distances {
		if !math.IsInf(d, 1) {
			c++
		}
	}

	return c
}

// Clone returns a deep copy.
func (da *DistanceArray) Clone() *DistanceArray {
	return &DistanceArray{
		Source:       da.Source,
		Distances:    append([]float64(nil), da.Distances...),
		Predecessors: append([]VertexIndex(nil), da.Predecessors...),
	}
}
