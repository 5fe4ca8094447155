// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Nodes laid out left to right on the canvas midline.
//   • Edges i—(i+1) for i=0..n-2, in that order.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		ids := addNodes(d, cfg, lineLayout(cfg, n))
		for i := 0; i+1 < n; i++ {
			addEdge(d, cfg, ids[i], ids[i+1])
		}

		return nil
	}
}
