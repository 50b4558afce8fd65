// SPDX-License-Identifier: MIT
//
// File: ids.go
// Role: Identifier and VertexIndex value types, sentinel constants, RawEdge.

package core

import (
	"math"
	"strconv"
)

// Identifier is an original, caller-supplied vertex identifier. It is opaque
// to the library: any value up to 64 bits wide, dense or not. String-derived
// identifiers (e.g. IPv4 addresses) are encoded into the integer first.
type Identifier uint64

// String formats the identifier in decimal.
func (id Identifier) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// VertexIndex is a dense, zero-based vertex index into a CSRGraph.
// It is strictly 32-bit; CSR storage and distance arrays are indexed by it.
type VertexIndex uint32

// NoVertex is the "none" sentinel used in predecessor arrays. It is never a
// valid index, which caps the number of vertices at MaxVertices.
const NoVertex = VertexIndex(math.MaxUint32)

// MaxVertices is the largest vertex count a CSRGraph (and a renumbering run)
// may hold: indices 0..MaxVertices-1 are valid, MaxVertices itself is NoVertex.
const MaxVertices = int64(math.MaxUint32)

// String formats the index in decimal, or "none" for NoVertex.
func (v VertexIndex) String() string {
	if v == NoVertex {
		return "none"
	}

	return strconv.FormatUint(uint64(v), 10)
}

// DefaultWeight is the edge weight assumed when a caller supplies none.
// With every weight equal to DefaultWeight, shortest-path distances equal hop counts.
const DefaultWeight = 1.0

// RawEdge is one input edge expressed in original identifiers.
// Self-loops and parallel edges are legal and preserved.
type RawEdge struct {
	Source      Identifier
	Destination Identifier
	Weight      float64
}
