package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/replay"
)

// ProgressBar draws a width-cell bar for p in [0,1], e.g. "[#####.....]".
// Out-of-range p is clamped; width below 1 yields "[]".
func ProgressBar(p float64, width int) string {
	if width < 1 {
		return "[]"
	}
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	p = math.Min(p, 1)
	filled := int(math.Round(p * float64(width)))

	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

// Weight renders the running tree weight, e.g. "MST Weight: 10".
func Weight(w float64) string {
	return "MST Weight: " + core.FormatWeight(w)
}

// Speed renders a speed multiplier, e.g. "1.5x".
func Speed(x float64) string {
	return core.FormatWeight(x) + "x"
}

// ReportOptions controls Report.
type ReportOptions struct {
	// Cols and Rows size the graph drawing; zero disables it.
	Cols, Rows int
	// BarWidth sizes the progress bar; zero disables it.
	BarWidth int
}

// Report writes a plain-text rendition of f: position, operation, the
// description and explanation, tree summary and heap panel, optionally
// preceded by the drawing and followed by the progress bar.
func Report(w io.Writer, g *core.Graph, f replay.Frame, opts ReportOptions) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  [%s]  %s  %s\n", f.Position(), f.State, Speed(f.Speed), f.Interval)
	if !f.HasStep {
		b.WriteString("No steps.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}
	s := f.Step
	if opts.Cols > 0 && opts.Rows > 0 {
		b.WriteString(Draw(g, s, opts.Cols, opts.Rows).String())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s (%s)\n", s.Description, s.Operation)
	if s.Explanation != "" {
		fmt.Fprintf(&b, "  %s\n", s.Explanation)
	}
	if s.CurrentEdge != nil {
		fmt.Fprintf(&b, "Current: %s\n", edgeName(g, *s.CurrentEdge))
	}
	tree := make([]string, len(s.MSTEdges))
	for i, e := range s.MSTEdges {
		tree[i] = fmt.Sprintf("%s(%s)", edgeName(g, e), core.FormatWeight(e.Weight))
	}
	if len(tree) == 0 {
		tree = []string{"-"}
	}
	fmt.Fprintf(&b, "Tree: %s  %s\n", strings.Join(tree, " "), Weight(s.Weight()))
	b.WriteString("Heap:\n")
	for _, line := range HeapPanel(g, s.Heap) {
		fmt.Fprintf(&b, "  %s\n", line.Text)
	}
	if opts.BarWidth > 0 {
		fmt.Fprintf(&b, "%s %3.0f%%\n", ProgressBar(f.Progress(), opts.BarWidth), f.Progress()*100)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
