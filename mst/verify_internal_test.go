package mst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstreplay/core"
)

func square() *core.Graph {
	return core.MustGraph(
		[]core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]core.Edge{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "B", Target: "D", Weight: 2},
			{Source: "D", Target: "C", Weight: 3},
			{Source: "C", Target: "A", Weight: 4},
		},
	)
}

// TestVerify_DetectsTampering corrupts a fresh trace one way at a time.
func TestVerify_DetectsTampering(t *testing.T) {
	cases := []struct {
		name   string
		tamper func(tr *Trace)
		want   string
	}{
		{"wrong start", func(tr *Trace) { tr.steps[0].MSTNodes = []string{"B"} }, "step 0 tree"},
		{"duplicate node", func(tr *Trace) {
			s := &tr.steps[len(tr.steps)-1]
			s.MSTNodes[1] = s.MSTNodes[0]
		}, "duplicate tree node"},
		{"edge count", func(tr *Trace) {
			s := &tr.steps[2]
			s.MSTEdges = append(s.MSTEdges, s.MSTEdges[0])
		}, "edges for"},
		{"unsorted heap", func(tr *Trace) {
			h := tr.steps[1].Heap
			h[0], h[1] = h[1], h[0]
		}, "heap out of order"},
		{"shrinking tree", func(tr *Trace) {
			s := &tr.steps[4]
			s.MSTNodes = s.MSTNodes[:1]
			s.MSTEdges = s.MSTEdges[:0]
		}, "does not extend"},
		{"leftover heap", func(tr *Trace) {
			tr.steps[len(tr.steps)-1].Heap = []HeapEntry{{Edge: core.Edge{Source: "A", Target: "C", Weight: 4}, Priority: 4}}
		}, "final heap"},
		{"heavier tree", func(tr *Trace) {
			s := &tr.steps[len(tr.steps)-1]
			s.MSTEdges[0].Weight = 40
		}, "minimum is 6"},
		{"truncated", func(tr *Trace) {
			tr.steps = tr.steps[:3]
			tr.steps[2].Heap = nil
		}, "2 nodes, 4 reachable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := NewTrace(square(), "A")
			require.NoError(t, err)
			require.NoError(t, Verify(tr))

			tc.tamper(tr)
			err = Verify(tr)
			assert.ErrorIs(t, err, ErrTraceInvariant)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

// TestVerify_Empty accepts only an empty graph with an empty trace.
func TestVerify_Empty(t *testing.T) {
	tr, err := NewTrace(core.MustGraph(nil, nil), "")
	require.NoError(t, err)
	assert.NoError(t, Verify(tr))

	tr.graph = square()
	assert.ErrorIs(t, Verify(tr), ErrTraceInvariant)
	assert.ErrorIs(t, Verify(nil), ErrInvalidGraph)
}
