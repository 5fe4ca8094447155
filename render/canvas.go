package render

import (
	"math"
	"strings"

	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/mst"
)

// Class tags a canvas cell for styling.
type Class uint8

const (
	ClassBlank Class = iota
	ClassEdgeIdle
	ClassEdgeMST
	ClassEdgeCurrent
	ClassWeightIdle
	ClassWeightMST
	ClassWeightCurrent
	ClassNode
	ClassNodeMST
	ClassNodeHighlight
)

// Cell is one character position.
type Cell struct {
	Rune  rune
	Class Class
}

// Run is a maximal horizontal stretch of cells sharing a Class.
type Run struct {
	Text  string
	Class Class
}

// Canvas is a fixed-size character grid.
type Canvas struct {
	cols, rows int
	cells      [][]Cell
}

// Minimum canvas size; smaller requests are raised to it.
const (
	MinCols = 16
	MinRows = 6
)

// Draw rasterizes g at step s into a cols×rows grid. Node coordinates are
// scaled to fit; edges are straight lines with their weight at the midpoint.
//
// Steps:
//  1. Map node positions onto the grid, keeping a one-cell border.
//  2. Draw idle edges, then tree edges, then the current edge.
//  3. Write weight labels in the same order.
//  4. Write node labels last; highlighted beats in-tree.
func Draw(g *core.Graph, s mst.Step, cols, rows int) *Canvas {
	cols, rows = max(cols, MinCols), max(rows, MinRows)
	c := &Canvas{cols: cols, rows: rows, cells: make([][]Cell, rows)}
	for r := range c.cells {
		c.cells[r] = make([]Cell, cols)
		for i := range c.cells[r] {
			c.cells[r][i] = Cell{Rune: ' '}
		}
	}
	if g == nil || g.NodeCount() == 0 {
		return c
	}

	// 1. Positions.
	pos := project(g.Nodes(), cols, rows)

	// 2-3. Edges by precedence.
	edges := g.Edges()
	for _, pass := range []EdgeState{EdgeIdle, EdgeInMST, EdgeCurrent} {
		for _, e := range edges {
			if ClassifyEdge(s, e) == pass {
				c.line(pos[e.Source], pos[e.Target], edgeClass[pass])
			}
		}
	}
	for _, pass := range []EdgeState{EdgeIdle, EdgeInMST, EdgeCurrent} {
		for _, e := range edges {
			if ClassifyEdge(s, e) != pass || e.Source == e.Target {
				continue
			}
			a, b := pos[e.Source], pos[e.Target]
			mid := cell{col: (a.col + b.col) / 2, row: (a.row + b.row) / 2}
			c.text(mid, core.FormatWeight(e.Weight), weightClass[pass])
		}
	}

	// 4. Nodes.
	for _, n := range g.Nodes() {
		st := ClassifyNode(s, n.ID)
		cls := ClassNode
		switch {
		case st.Highlighted:
			cls = ClassNodeHighlight
		case st.InMST:
			cls = ClassNodeMST
		}
		c.text(pos[n.ID], g.Label(n.ID), cls)
	}

	return c
}

var (
	edgeClass   = map[EdgeState]Class{EdgeIdle: ClassEdgeIdle, EdgeInMST: ClassEdgeMST, EdgeCurrent: ClassEdgeCurrent}
	weightClass = map[EdgeState]Class{EdgeIdle: ClassWeightIdle, EdgeInMST: ClassWeightMST, EdgeCurrent: ClassWeightCurrent}
)

type cell struct{ col, row int }

// project scales node coordinates into the grid interior.
func project(nodes []core.Node, cols, rows int) map[string]cell {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, n := range nodes {
		minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
		minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
	}
	scale := func(v, lo, hi float64, cells int) int {
		inner := cells - 3
		if hi == lo {
			return cells / 2
		}
		return 1 + int(math.Round((v-lo)/(hi-lo)*float64(inner)))
	}
	out := make(map[string]cell, len(nodes))
	for _, n := range nodes {
		out[n.ID] = cell{col: scale(n.X, minX, maxX, cols), row: scale(n.Y, minY, maxY, rows)}
	}

	return out
}

// line draws a Bresenham segment between a and b, endpoints excluded.
func (c *Canvas) line(a, b cell, cls Class) {
	dc, dr := b.col-a.col, b.row-a.row
	glyph := slopeGlyph(dc, dr)
	adc, adr := abs(dc), abs(dr)
	sc, sr := sign(dc), sign(dr)
	err := adc - adr
	x, y := a.col, a.row
	for x != b.col || y != b.row {
		e2 := 2 * err
		if e2 > -adr {
			err -= adr
			x += sc
		}
		if e2 < adc {
			err += adc
			y += sr
		}
		if x == b.col && y == b.row {
			break
		}
		c.set(x, y, glyph, cls)
	}
}

// slopeGlyph picks a line character for a direction. Terminal cells are
// about twice as tall as wide.
func slopeGlyph(dc, dr int) rune {
	switch {
	case dr == 0:
		return '-'
	case dc == 0:
		return '|'
	}
	ratio := 2 * math.Abs(float64(dr)) / math.Abs(float64(dc))
	switch {
	case ratio < 0.5:
		return '-'
	case ratio > 4:
		return '|'
	case (dc > 0) == (dr > 0):
		return '\\'
	default:
		return '/'
	}
}

// text writes s centered on at, clipped to the grid.
func (c *Canvas) text(at cell, s string, cls Class) {
	runes := []rune(s)
	start := at.col - (len(runes)-1)/2
	for i, r := range runes {
		c.set(start+i, at.row, r, cls)
	}
}

func (c *Canvas) set(col, row int, r rune, cls Class) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	c.cells[row][col] = Cell{Rune: r, Class: cls}
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// At returns the cell at (col,row); out of range yields a blank cell.
func (c *Canvas) At(col, row int) Cell {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return Cell{Rune: ' '}
	}

	return c.cells[row][col]
}

// Runs splits one row into same-class stretches.
func (c *Canvas) Runs(row int) []Run {
	if row < 0 || row >= c.rows {
		return nil
	}
	var (
		runs []Run
		b    strings.Builder
		cur  = c.cells[row][0].Class
	)
	for _, cl := range c.cells[row] {
		if cl.Class != cur {
			runs = append(runs, Run{Text: b.String(), Class: cur})
			b.Reset()
			cur = cl.Class
		}
		b.WriteRune(cl.Rune)
	}

	return append(runs, Run{Text: b.String(), Class: cur})
}

// String renders the grid as plain text, trailing spaces trimmed.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for r, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(cl.Rune)
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}

	return strings.Join(lines, "\n")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
