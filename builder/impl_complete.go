// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 has no edges.
//   • Nodes on a circle.
//   • Edges i—j for i<j, i ascending then j ascending.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		ids := addNodes(d, cfg, circleLayout(cfg, n))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(d, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
