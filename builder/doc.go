// SPDX-License-Identifier: MIT

// Package builder turns dense edge columns into an immutable core.CSRGraph
// and provides deterministic edge-list fixtures for tests and benchmarks.
//
// CSR construction (Build):
//
//   - Pass 1 counts out-degrees per source vertex, validating every endpoint
//     and weight on the way. WithParallelism(k) counts k contiguous chunks
//     concurrently; counts are summed, so the result does not depend on k.
//   - Prefix sums turn degrees into offsets (offsets[0]=0, offsets[n]=m).
//   - Pass 2 scatters each edge into its row with a per-vertex cursor.
//     It is sequential, so neighbor order within a row is the input order.
//
// Undirected graphs:
//
//	WithUndirected() stores every input edge u-v twice, as u→v and v→u,
//	emitted in that order per input edge. Storage doubles; NumEdges counts
//	stored slots. A self-loop u-u is therefore stored twice in row u.
//
// Weights:
//
//	WithWeights(ws) supplies one weight per input edge; otherwise every edge
//	gets WithDefaultWeight (core.DefaultWeight unless set). NaN and ±Inf are
//	rejected with ErrInvalidWeight. Negative weights are stored as-is; the
//	shortest-path engine rejects them at query time.
//
// Fixtures:
//
//	Generate composes Constructor values (Path, Cycle, Star, Complete, Grid,
//	RandomSparse) into an *EdgeList over vertex indices 0..N-1. Each
//	constructor emits every undirected pair once; build with WithUndirected
//	to obtain both directions. Stochastic constructors need WithSeed or
//	WithRand and are reproducible for a fixed seed.
//
// Errors (sentinel):
//
//   - ErrVertexCount       n < 0 or n > core.MaxVertices.
//   - ErrLengthMismatch    edge columns (or the weight column) differ in length.
//   - ErrVertexOutOfRange  an endpoint >= n (wraps core.ErrVertexOutOfRange).
//   - ErrInvalidWeight     a NaN or infinite weight.
//   - ErrOptionViolation   an invalid option value.
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource for fixtures.
//
// A graph is returned only after every invariant holds; on error nothing
// partially built escapes.
//
// Complexity: Build is O(n + m) time and O(n + m) space.
package builder
