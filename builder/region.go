// SPDX-License-Identifier: MIT
// Package: mstreplay/builder
//
// region.go - Region(x, y, w, h, c) places one constructor's output inside a
// sub-rectangle of the canvas.
//
// Contract:
//   • 0 ≤ x, 0 ≤ y, x+w ≤ width, y+h ≤ height (else ErrRegionOutOfCanvas).
//   • w and h exceed 2·margin, the inner canvas keeps the outer margin.
//   • c lays out on a w × h canvas; its nodes are then shifted by (x, y).
//   • IDs, weights and emission order are exactly those of c alone.
//
// Complexity: cost of c plus O(nodes added by c).

package builder

import "fmt"

// Region returns a Constructor that runs c inside the rectangle with top-left
// corner (x, y) and size w × h. Composing constructors in disjoint regions
// keeps their drawings apart.
func Region(x, y, w, h float64, c Constructor) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodRegion, ErrConstructFailed)
		}
		if x < 0 || y < 0 || x+w > cfg.width || y+h > cfg.height ||
			w <= 2*cfg.margin || h <= 2*cfg.margin {
			return fmt.Errorf("%s: (%g,%g) %g×%g on %g×%g, margin %g: %w",
				methodRegion, x, y, w, h, cfg.width, cfg.height, cfg.margin, ErrRegionOutOfCanvas)
		}

		inner := cfg
		inner.width, inner.height = w, h
		first := len(d.Nodes)
		if err := c(d, inner); err != nil {
			return err
		}
		for i := first; i < len(d.Nodes); i++ {
			d.Nodes[i].X = round1(d.Nodes[i].X + x)
			d.Nodes[i].Y = round1(d.Nodes[i].Y + y)
		}

		return nil
	}
}
