// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model: 2D orthogonal grid with 4-neighborhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Nodes in row-major order; IDs from cfg.idFn like every constructor.
//     The Label carries the "r,c" coordinate.
//   • For each cell emit Right then Bottom neighbor where present.
//
// Complexity: O(rows·cols) nodes and edges.

package builder

import "strconv"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		first := len(d.Nodes)
		ids := addNodes(d, cfg, gridLayout(cfg, rows, cols))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.Nodes[first+r*cols+c].Label = strconv.Itoa(r) + "," + strconv.Itoa(c)
			}
		}

		at := func(r, c int) string { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addEdge(d, cfg, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					addEdge(d, cfg, at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
