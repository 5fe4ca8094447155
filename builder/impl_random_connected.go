// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, p).
//
// Model:
//   1. Random spanning tree: node i (i ≥ 1) attaches to a uniformly chosen
//      earlier node. This guarantees connectivity.
//   2. Erdős–Rényi extras: every remaining unordered pair {i,j}, i<j, joins
//      independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Nodes on a circle; tree edges first (i ascending), then extras
//     (i ascending, j ascending).
//
// Complexity: O(n²) Bernoulli trials.
// Determinism: fixed trial order, so a fixed seed yields a fixed graph.

package builder

import "fmt"

// RandomConnected returns a Constructor that samples a connected sparse graph.
func RandomConnected(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate.
		if err := validateMin(methodRandomConnected, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomConnected, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		ids := addNodes(d, cfg, circleLayout(cfg, n))

		// 2) Spanning tree.
		type pair struct{ i, j int }
		used := make(map[pair]bool, n)
		for j := 1; j < n; j++ {
			i := cfg.rng.Intn(j)
			used[pair{i, j}] = true
			addEdge(d, cfg, ids[i], ids[j])
		}

		// 3) Extras.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if used[pair{i, j}] {
					continue
				}
				if cfg.rng.Float64() < p {
					addEdge(d, cfg, ids[i], ids[j])
				}
			}
		}

		return nil
	}
}
