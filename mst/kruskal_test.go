package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/mst"
)

// TestKruskal_SimpleGraph checks the acceptance order on the reference graph.
func TestKruskal_SimpleGraph(t *testing.T) {
	forest, total, err := mst.Kruskal(buildSimple())
	require.NoError(t, err)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, []core.Edge{edge("C", "E", 1), edge("A", "D", 2), edge("B", "C", 3), edge("A", "B", 4)}, forest)
}

// TestKruskal_Forest returns one tree per component instead of failing.
func TestKruskal_Forest(t *testing.T) {
	g := core.MustGraph(
		[]core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		[]core.Edge{edge("A", "B", 3), edge("C", "D", 1), edge("D", "E", 2), edge("C", "E", 9)},
	)
	forest, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, forest, 3)
	assert.Equal(t, 6.0, total)
}

// TestKruskal_Trivial covers nil, empty and single-node graphs, plus loops.
func TestKruskal_Trivial(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrInvalidGraph)

	forest, total, err := mst.Kruskal(core.MustGraph(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)

	looped := core.MustGraph(
		[]core.Node{{ID: "A"}, {ID: "B"}},
		[]core.Edge{edge("A", "A", 0), edge("A", "B", 4)},
		core.WithLoops(),
	)
	forest, total, err = mst.Kruskal(looped)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{edge("A", "B", 4)}, forest)
	assert.Equal(t, 4.0, total)
}
