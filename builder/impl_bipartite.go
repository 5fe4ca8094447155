// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left partition first (IDs 0..n1-1), then right (n1..n1+n2-1).
//   • Left nodes on the left margin, right nodes on the right margin, each
//     column spread evenly top to bottom.
//   • Emits every cross pair L_i—R_j: i ascending, then j ascending.
//
// Complexity: O(n1 + n2) nodes + O(n1·n2) edges.

package builder

import "fmt"

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n1 < MinPartitionSize || n2 < MinPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionSize, ErrTooFewVertices)
		}

		left := addNodes(d, cfg, columnLayout(cfg, cfg.margin, n1))
		right := addNodes(d, cfg, columnLayout(cfg, cfg.width-cfg.margin, n2))
		for _, u := range left {
			for _, v := range right {
				addEdge(d, cfg, u, v)
			}
		}

		return nil
	}
}

// columnLayout spreads n points evenly down the vertical line at x.
func columnLayout(cfg builderConfig, x float64, n int) []point {
	pts := gridLayout(cfg, n, 1)
	for i := range pts {
		pts[i].x = round1(x)
	}

	return pts
}
