// SPDX-License-Identifier: MIT

// Package renumber maps arbitrary, possibly sparse 64-bit vertex identifiers
// onto the dense range 0..n-1 required by CSR storage, and keeps the
// reversible mapping.
//
// Overview:
//
//   - One pass collects the distinct identifiers over both edge columns.
//   - Dense indices are assigned in ascending identifier order (OrderSorted,
//     the default) so numbering is reproducible regardless of edge order.
//     OrderFirstSeen assigns indices in first-appearance order instead,
//     scanning each pair source first, then destination.
//   - A second pass rewrites both columns into VertexIndex sequences of the
//     same length as the input.
//
// Why renumber at all:
//
//	Without a dense identifier space an array-indexed adjacency structure
//	would need memory proportional to the identifier range (2^32 for IPv4
//	addresses) instead of to the vertex count. After renumbering, the CSR
//	builder runs in O(n + m).
//
// Overflow:
//
//	core.NoVertex reserves the top 32-bit value, so at most core.MaxVertices
//	(2^32 - 1) distinct identifiers fit. More than that fails the whole run
//	with ErrIdentifierOverflow; nothing is truncated.
//
// Parallelism:
//
//	WithParallelism(k) splits the input into k contiguous chunks. Distinct
//	sets are collected per chunk concurrently (fork), merged and sorted
//	sequentially (join), and the columns are rewritten per chunk into
//	disjoint output ranges. The result is identical for every k.
//	OrderFirstSeen is inherently sequential and ignores k.
//
// Errors (sentinel):
//
//   - ErrLengthMismatch     source and destination columns differ in length.
//   - ErrIdentifierOverflow more distinct identifiers than the index space.
//   - ErrOptionViolation    an invalid option value was supplied.
//   - ctx.Err()             the context passed via WithContext was cancelled.
//
// Complexity:
//
//   - Time:  O(m + n log n) for OrderSorted, O(m) for OrderFirstSeen.
//   - Space: O(n) for the mapping plus O(m) for the output columns.
package renumber
