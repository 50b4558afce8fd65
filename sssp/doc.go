// SPDX-License-Identifier: MIT

// Package sssp computes single-source shortest paths over a core.CSRGraph
// with non-negative edge weights.
//
// Overview:
//
//   - Label-setting Dijkstra. Each vertex is settled at most once; a settled
//     distance never changes.
//   - The default frontier (FrontierBinaryHeap) is a binary min-heap with
//     lazy decrease-key: an improved distance pushes a new entry and stale
//     entries are skipped when popped.
//   - FrontierIndexed keeps one entry per vertex and decreases keys in place
//     (github.com/rhartert/yagh). It bounds the heap to n entries.
//
// Tie-break contract (first-settled wins):
//
//	The binary-heap frontier orders entries by (distance, vertex index), so
//	among equal-distance vertices the smaller index settles first. A
//	tentative distance, and with it the predecessor, is replaced only on a
//	strict improvement. When several equal-distance predecessors exist, the
//	one settled earliest is reported. Results are therefore identical across
//	runs and platforms for a given graph. FrontierIndexed yields the same
//	distances; its equal-distance order is deterministic but not
//	index-ordered, so predecessors may differ on ties.
//
// Errors (sentinel):
//
//   - ErrNilGraph         graph pointer is nil.
//   - ErrInvalidSource    source >= n; nothing is computed.
//   - ErrNegativeWeight   a negative weight was met during relaxation.
//   - ErrOptionViolation  an invalid option value.
//   - ctx.Err()           the context passed via WithContext was cancelled.
//
// Options:
//
//   - WithContext(ctx):          checked between frontier extractions.
//   - WithFrontier(kind):        FrontierBinaryHeap (default) or FrontierIndexed.
//   - WithMaxDistance(d):        vertices farther than d stay unreachable.
//   - WithInfEdgeThreshold(t):   edges with weight >= t are impassable.
//   - WithOnSettle(fn):          called once per settled vertex; an error aborts.
//
// Concurrency:
//
//	The graph is read-only. An Engine serves concurrent queries over one
//	graph, each with its own pooled workspace; workspace reset costs are
//	proportional to the vertices a query touched, not to n.
//
// Complexity:
//
//   - Time:  O((n + m) log n).
//   - Space: O(n + m) worst case for the lazy heap, O(n) for FrontierIndexed.
package sssp
