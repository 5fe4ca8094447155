// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition: Wₙ = Cₙ₋₁ + hub, so n ≥ 4.
//
// Contract:
//   • Builds the rim with Cycle(n-1) under the same cfg.
//   • The hub is emitted last (next ID in sequence) at the canvas center.
//   • Spokes hub—rim in rim order, after all rim edges.
//
// Complexity: O(n) nodes + O(2n) edges.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel Wₙ.
func Wheel(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		first := len(d.Nodes)
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		rim := make([]string, 0, n-1)
		for _, nd := range d.Nodes[first:] {
			rim = append(rim, nd.ID)
		}

		hub := addNodes(d, cfg, []point{center(cfg)})[0]
		for _, r := range rim {
			addEdge(d, cfg, hub, r)
		}

		return nil
	}
}
