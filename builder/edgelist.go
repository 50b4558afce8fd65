// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// edgelist.go — dense edge columns produced by fixture constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

// EdgeList is a set of dense edge columns over vertices 0..N-1.
// Weights is parallel to Sources and Destinations.
type EdgeList struct {
	N            int
	Sources      []core.VertexIndex
	Destinations []core.VertexIndex
	Weights      []float64
}

// Len returns the number of edges.
func (el *EdgeList) Len() int { return len(el.Sources) }

// Add appends edge u→v with weight w and grows N to cover both endpoints.
func (el *EdgeList) Add(u, v core.VertexIndex, w float64) {
	el.Sources = append(el.Sources, u)
	el.Destinations = append(el.Destinations, v)
	el.Weights = append(el.Weights, w)
	el.N = max(el.N, int(u)+1, int(v)+1)
}

// RawEdges returns the edges with each dense index reused as its identifier.
func (el *EdgeList) RawEdges() []core.RawEdge {
	out := make([]core.RawEdge, el.Len())
	for i := range out {
		out[i] = core.RawEdge{
			Source:      core.Identifier(el.Sources[i]),
			Destination: core.Identifier(el.Destinations[i]),
			Weight:      el.Weights[i],
		}
	}

	return out
}

// FromEdgeList builds a CSR graph from el. The list's weight column is used
// unless opts supply another one.
func FromEdgeList(el *EdgeList, opts ...Option) (*core.CSRGraph, error) {
	if el == nil {
		return nil, fmt.Errorf("FromEdgeList: %w", ErrNilEdgeList)
	}
	all := make([]Option, 0, len(opts)+1)
	if el.Weights != nil {
		all = append(all, WithWeights(el.Weights))
	}
	all = append(all, opts...)

	return Build(el.N, el.Sources, el.Destinations, all...)
}
