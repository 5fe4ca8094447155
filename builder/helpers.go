// Package builder helpers shared by the impl_*.go constructors: node
// emission with layout coordinates and edge emission with configured weights.
package builder

import (
	"math"

	"github.com/katalvlaran/mstreplay/core"
)

// point is a layout coordinate on the canvas.
type point struct{ x, y float64 }

// addNodes appends len(at) nodes with IDs cfg.idFn(len(d.Nodes)+i) and
// returns their IDs in emission order.
func addNodes(d *Draft, cfg builderConfig, at []point) []string {
	base := len(d.Nodes)
	ids := make([]string, len(at))
	for i, p := range at {
		ids[i] = cfg.idFn(base + i)
		d.Nodes = append(d.Nodes, core.Node{ID: ids[i], X: p.x, Y: p.y})
	}

	return ids
}

// addEdge appends u–v with the next configured weight.
func addEdge(d *Draft, cfg builderConfig, u, v string) {
	d.Edges = append(d.Edges, core.Edge{Source: u, Target: v, Weight: cfg.weight()})
}

// circleLayout spreads n points clockwise on the largest circle fitting the
// canvas, starting at twelve o'clock.
func circleLayout(cfg builderConfig, n int) []point {
	cx, cy := cfg.width/2, cfg.height/2
	r := math.Min(cfg.width, cfg.height)/2 - cfg.margin
	pts := make([]point, n)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		pts[i] = point{x: round1(cx + r*math.Cos(a)), y: round1(cy + r*math.Sin(a))}
	}

	return pts
}

// lineLayout spreads n points evenly along the horizontal midline.
func lineLayout(cfg builderConfig, n int) []point {
	return gridLayout(cfg, 1, n)
}

// gridLayout places rows×cols points in row-major order.
func gridLayout(cfg builderConfig, rows, cols int) []point {
	step := func(i, k int, span float64) float64 {
		if k == 1 {
			return span / 2
		}
		return cfg.margin + float64(i)*(span-2*cfg.margin)/float64(k-1)
	}
	pts := make([]point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, point{x: round1(step(c, cols, cfg.width)), y: round1(step(r, rows, cfg.height))})
		}
	}

	return pts
}

// center returns the canvas midpoint.
func center(cfg builderConfig) point {
	return point{x: cfg.width / 2, y: cfg.height / 2}
}

// round1 rounds to one decimal so layouts serialize compactly.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
