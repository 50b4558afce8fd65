// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// impl_complete.go — Complete(n): every unordered pair once.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 has no edges but still covers N=1.
//   • Emits i→j for i asc, j>i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		el.N = max(el.N, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				el.Add(core.VertexIndex(i), core.VertexIndex(j), cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
