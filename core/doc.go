// SPDX-License-Identifier: MIT

// Package core defines the shared value types of csrpath: original vertex
// identifiers, dense vertex indices, the immutable compressed-sparse-row graph
// and the per-query distance/predecessor arrays.
//
// The types form the contract between the pipeline stages:
//
//	RawEdge (Identifier pairs) ──renumber──▶ VertexIndex pairs
//	VertexIndex pairs          ──builder───▶ *CSRGraph
//	*CSRGraph + source         ──sssp/bfs──▶ *DistanceArray
//	*DistanceArray + target    ──path──────▶ []VertexIndex
//
// CSR layout:
//
//	offsets   [0, 2, 3, 3]        n+1 entries, non-decreasing
//	neighbors [1, 2, 2]           m entries, every value < n
//	weights   [1.0, 4.0, 2.0]     m entries, parallel to neighbors
//
// Vertex i owns the slice neighbors[offsets[i]:offsets[i+1]].
//
// Invariants (checked by NewCSR and Validate):
//
//   - len(offsets) == n+1, offsets[0] == 0, offsets[n] == m.
//   - offsets is non-decreasing.
//   - len(neighbors) == len(weights) == m.
//   - neighbors[k] < n for every k.
//
// Immutability:
//
//	A CSRGraph never changes after construction. Accessors that return slices
//	(Neighbors, Weights) return views into the internal storage; treat them as
//	read-only. Sharing one *CSRGraph between goroutines is safe as long as no
//	caller writes through such a view.
//
// Errors:
//
//	ErrMalformedCSR        - arrays passed to NewCSR violate the CSR invariants.
//	ErrVertexOutOfRange    - an accessor was called with a vertex index >= n.
//	ErrInternalConsistency - an invariant that the library itself must uphold was
//	                         found broken (builder or engine bug). Never swallow it.
package core
