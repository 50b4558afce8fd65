// SPDX-License-Identifier: MIT
// Package: csrpath/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) is vertex r*cols+c (row-major).
//   • For each cell in row-major order emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/csrpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		el.N = max(el.N, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := core.VertexIndex(r*cols + c)
				if c+1 < cols {
					el.Add(u, u+1, cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					el.Add(u, u+core.VertexIndex(cols), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
