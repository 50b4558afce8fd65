// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// impl_path.go — Path(n): 0-1-2-...-(n-1).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i→i+1 for i asc; weights from cfg.weightFn(cfg.rng).

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			el.Add(core.VertexIndex(i), core.VertexIndex(i+1), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
