package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstreplay/core"
)

// TestReachable_BFSOrder checks breadth-first order on a small tree plus an island.
//
//	A───B───D      E (island)
//	│
//	C
func TestReachable_BFSOrder(t *testing.T) {
	g := core.MustGraph(
		[]core.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}, {ID: "E"}},
		[]core.Edge{
			{Source: "A", Target: "B", Weight: 1},
			{Source: "B", Target: "D", Weight: 1},
			{Source: "C", Target: "A", Weight: 1},
		},
	)

	order, err := g.Reachable("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)

	island, err := g.Reachable("E")
	require.NoError(t, err)
	assert.Equal(t, []string{"E"}, island)

	assert.False(t, g.Connected())

	_, err = g.Reachable("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestConnected covers the empty and single-node graphs.
func TestConnected(t *testing.T) {
	assert.True(t, core.MustGraph(nil, nil).Connected())
	assert.True(t, core.MustGraph([]core.Node{{ID: "X"}}, nil).Connected())
}
