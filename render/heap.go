package render

import (
	"fmt"

	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/mst"
)

// HeapPreview is how many heap entries the panel lists before folding.
const HeapPreview = 5

// HeapLine is one row of the heap panel. Entry is nil for the fold and
// empty markers.
type HeapLine struct {
	Text  string
	Entry *mst.HeapEntry
	First bool
}

// HeapPanel lists the first HeapPreview entries as "S-T  priority", then
// "... and N more". An empty heap yields the single line "Heap is empty".
// The first entry is flagged: it is the next to be extracted.
func HeapPanel(g *core.Graph, heap []mst.HeapEntry) []HeapLine {
	if len(heap) == 0 {
		return []HeapLine{{Text: "Heap is empty"}}
	}
	n := min(len(heap), HeapPreview)
	out := make([]HeapLine, 0, n+1)
	for i := 0; i < n; i++ {
		entry := heap[i]
		out = append(out, HeapLine{
			Text:  fmt.Sprintf("%s  %s", edgeName(g, entry.Edge), core.FormatWeight(entry.Priority)),
			Entry: &entry,
			First: i == 0,
		})
	}
	if rest := len(heap) - n; rest > 0 {
		out = append(out, HeapLine{Text: fmt.Sprintf("... and %d more", rest)})
	}

	return out
}

// edgeName prints "S-T" with node labels, falling back to IDs without a graph.
func edgeName(g *core.Graph, e core.Edge) string {
	if g == nil {
		return e.Source + "-" + e.Target
	}

	return g.EdgeLabel(e)
}
