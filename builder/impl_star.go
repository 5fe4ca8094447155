// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is the first node emitted (index 0, canvas center); the n-1
//     leaves follow on a circle.
//   • Spokes hub—leaf in leaf order.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		at := append([]point{center(cfg)}, circleLayout(cfg, n-1)...)
		ids := addNodes(d, cfg, at)
		for _, leaf := range ids[1:] {
			addEdge(d, cfg, ids[0], leaf)
		}

		return nil
	}
}
