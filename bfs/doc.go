// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.CSRGraph, returning
// hop-count distances, parent links and visit order. Edge weights are
// ignored.
//
// What
//
//   - Explores vertices in non-decreasing hop count from a source.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Hops:  a core.DistanceArray whose distances are hop counts
//     (+Inf when unreachable) and whose predecessors are BFS-tree parents
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds depth.
//
// Determinism
//
//	Neighbors are enqueued in CSR row order and the queue is FIFO, so the
//	first-discovered parent wins and the visit sequence is reproducible.
//	On a graph whose weights are all equal, Hops.Distances are the weighted
//	distances divided by that weight, which makes BFS a cheap cross-check
//	for the shortest-path engine.
//
// Complexity (n vertices, m stored edges)
//
//   - Time:   O(n + m)
//   - Memory: O(n)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrInvalidSource    if source >= n.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped hook errors from OnVisit.
package bfs
