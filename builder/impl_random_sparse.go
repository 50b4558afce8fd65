// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Default: trial per unordered pair i<j. WithOrderedPairs: per ordered
//     pair i≠j. Self-loops are never sampled.
//
// Determinism:
//   • Trial order is i asc, j asc. One Float64 draw per trial, followed by
//     the weight draw for accepted edges, so a fixed seed fixes the output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each admissible edge
// independently with probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		el.N = max(el.N, n)
		accept := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.orderedPairs {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if accept() {
					el.Add(core.VertexIndex(i), core.VertexIndex(j), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
