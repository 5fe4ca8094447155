package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstreplay/core"
)

// nodesABC returns three unplaced nodes A, B, C.
func nodesABC() []core.Node {
	return []core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
}

// TestNewGraph_Valid checks counts, order and copies on a triangle.
func TestNewGraph_Valid(t *testing.T) {
	g, err := core.NewGraph(nodesABC(), []core.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "B", Target: "C", Weight: 2},
		{Source: "C", Target: "A", Weight: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C"}, g.NodeIDs())

	// Mutating a returned slice must not leak into the graph.
	edges := g.Edges()
	edges[0].Weight = 99
	assert.Equal(t, 1.0, g.Edges()[0].Weight)
}

// TestNewGraph_InvalidInput is a table of every rejection path.
func TestNewGraph_InvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		nodes []core.Node
		edges []core.Edge
		opts  []core.GraphOption
		want  error
	}{
		{"empty id", []core.Node{{ID: ""}}, nil, nil, core.ErrEmptyNodeID},
		{"duplicate node", []core.Node{{ID: "A"}, {ID: "A"}}, nil, nil, core.ErrDuplicateNode},
		{"unknown source", nodesABC(), []core.Edge{{Source: "X", Target: "A", Weight: 1}}, nil, core.ErrNodeNotFound},
		{"unknown target", nodesABC(), []core.Edge{{Source: "A", Target: "X", Weight: 1}}, nil, core.ErrNodeNotFound},
		{"empty endpoint", nodesABC(), []core.Edge{{Source: "", Target: "A"}}, nil, core.ErrEmptyNodeID},
		{"negative weight", nodesABC(), []core.Edge{{Source: "A", Target: "B", Weight: -1}}, nil, core.ErrBadWeight},
		{"nan weight", nodesABC(), []core.Edge{{Source: "A", Target: "B", Weight: math.NaN()}}, nil, core.ErrBadWeight},
		{"inf weight", nodesABC(), []core.Edge{{Source: "A", Target: "B", Weight: math.Inf(1)}}, nil, core.ErrBadWeight},
		{"loop", nodesABC(), []core.Edge{{Source: "A", Target: "A", Weight: 1}}, nil, core.ErrLoopNotAllowed},
		{"parallel", nodesABC(), []core.Edge{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "B", Target: "A", Weight: 2},
		}, nil, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGraph(tc.nodes, tc.edges, tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, core.ErrInvalidInput, "every construction error is InvalidInput")
		})
	}
}

// TestNewGraph_Options verifies loops and parallel edges become legal when enabled.
func TestNewGraph_Options(t *testing.T) {
	g, err := core.NewGraph(nodesABC(), []core.Edge{
		{Source: "A", Target: "A", Weight: 1},
		{Source: "A", Target: "B", Weight: 5},
		{Source: "B", Target: "A", Weight: 1},
	}, core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, err)
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	inc, err := g.IncidentEdges("A")
	require.NoError(t, err)
	// loop once, then both parallel edges oriented away from A
	assert.Equal(t, []core.Edge{
		{Source: "A", Target: "A", Weight: 1},
		{Source: "A", Target: "B", Weight: 5},
		{Source: "A", Target: "B", Weight: 1},
	}, inc)

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, nbrs)
}

// TestIncidentEdges_Normalized checks orientation away from the queried node.
func TestIncidentEdges_Normalized(t *testing.T) {
	g := core.MustGraph(nodesABC(), []core.Edge{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "C", Target: "B", Weight: 2},
	})
	inc, err := g.IncidentEdges("B")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{Source: "B", Target: "A", Weight: 1},
		{Source: "B", Target: "C", Weight: 2},
	}, inc)

	_, err = g.IncidentEdges("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestLabel falls back to the ID.
func TestLabel(t *testing.T) {
	g := core.MustGraph([]core.Node{{ID: "0", Label: "A"}, {ID: "1"}}, nil)
	assert.Equal(t, "A", g.Label("0"))
	assert.Equal(t, "1", g.Label("1"))
	assert.Equal(t, "missing", g.Label("missing"))
	assert.Equal(t, "A-1", g.EdgeLabel(core.Edge{Source: "0", Target: "1"}))
}

// TestEdgeHelpers covers Reversed, Touches, SameEndpoints, String.
func TestEdgeHelpers(t *testing.T) {
	e := core.Edge{Source: "A", Target: "B", Weight: 2.5}
	assert.Equal(t, core.Edge{Source: "B", Target: "A", Weight: 2.5}, e.Reversed())
	assert.True(t, e.Touches("A"))
	assert.False(t, e.Touches("C"))
	assert.True(t, e.SameEndpoints(core.Edge{Source: "B", Target: "A", Weight: 7}))
	assert.False(t, e.SameEndpoints(core.Edge{Source: "A", Target: "C"}))
	assert.Equal(t, "A-B(2.5)", e.String())
	assert.Equal(t, 6.5, core.TotalWeight([]core.Edge{e, {Weight: 4}}))
}

// TestInvalidInputIdentity makes sure concrete sentinels stay distinct.
func TestInvalidInputIdentity(t *testing.T) {
	assert.True(t, errors.Is(core.ErrNodeNotFound, core.ErrInvalidInput))
	assert.False(t, errors.Is(core.ErrNodeNotFound, core.ErrBadWeight))
	assert.False(t, errors.Is(core.ErrInvalidInput, core.ErrNodeNotFound))
}
