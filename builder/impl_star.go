// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// impl_star.go — Star(n): center 0 with leaves 1..n-1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits spokes 0→i for i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_{n-1} centered at vertex 0.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			el.Add(0, core.VertexIndex(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
