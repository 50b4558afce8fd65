// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// impl_cycle.go — Cycle(n): a ring 0-1-...-(n-1)-0.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i→(i+1)%n for i asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			el.Add(core.VertexIndex(i), core.VertexIndex((i+1)%n), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}
