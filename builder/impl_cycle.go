// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Nodes on a circle, clockwise from the top.
//   • Edges i—(i+1)%n for i=0..n-1; the last one closes the ring.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		ids := addNodes(d, cfg, circleLayout(cfg, n))
		ring(d, cfg, ids)

		return nil
	}
}

// ring connects ids in order and closes the loop.
func ring(d *Draft, cfg builderConfig, ids []string) {
	for i := range ids {
		addEdge(d, cfg, ids[i], ids[(i+1)%len(ids)])
	}
}
