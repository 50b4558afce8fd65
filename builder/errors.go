// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w at the failure site.
//   • Neither Build nor the fixture constructors panic on caller input.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

// ErrVertexCount indicates n outside [0, core.MaxVertices].
var ErrVertexCount = errors.New("builder: vertex count out of range")

// ErrLengthMismatch indicates edge columns of different length, or a weight
// column that does not match the number of edges.
var ErrLengthMismatch = errors.New("builder: column lengths differ")

// ErrVertexOutOfRange indicates an endpoint index >= n. It wraps
// core.ErrVertexOutOfRange so either sentinel matches with errors.Is.
var ErrVertexOutOfRange = fmt.Errorf("builder: %w", core.ErrVertexOutOfRange)

// ErrInvalidWeight indicates a NaN or infinite edge weight.
var ErrInvalidWeight = errors.New("builder: edge weight is NaN or infinite")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (parallelism < 1, NaN default weight, nil RNG ...).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNilEdgeList indicates a nil *EdgeList passed to FromEdgeList.
var ErrNilEdgeList = errors.New("builder: edge list is nil")

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum the fixture constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor run without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor handed to Generate.
var ErrConstructFailed = errors.New("builder: construction failed")
