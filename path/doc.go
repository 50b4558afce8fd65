// SPDX-License-Identifier: MIT

// Package path walks predecessor links of a core.DistanceArray back to the
// source and evaluates paths against a core.CSRGraph.
//
// Reconstruct(da, target) returns the vertices source..target inclusive.
// The walk is bounded by n steps: a longer walk, or one that ends anywhere
// other than da.Source, means the predecessor array is corrupt and the
// error wraps core.ErrInternalConsistency.
//
// Errors (sentinel):
//
//   - ErrNilDistances      da is nil.
//   - ErrTargetOutOfRange  target >= n.
//   - ErrUnreachable       target has infinite distance.
//   - ErrNoEdge            a hop of the path has no edge in the graph (Weight).
package path
