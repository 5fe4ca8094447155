package render

import (
	"github.com/katalvlaran/mstreplay/core"
	"github.com/katalvlaran/mstreplay/mst"
)

// EdgeState is how an edge is drawn at one step.
type EdgeState int

const (
	EdgeIdle EdgeState = iota
	EdgeInMST
	EdgeCurrent
)

// String returns "idle", "mst" or "current".
func (s EdgeState) String() string {
	switch s {
	case EdgeInMST:
		return "mst"
	case EdgeCurrent:
		return "current"
	default:
		return "idle"
	}
}

// ClassifyEdge matches e against the step ignoring direction. The current
// edge wins over tree membership. With parallel edges, the weight must
// match too.
func ClassifyEdge(s mst.Step, e core.Edge) EdgeState {
	if s.CurrentEdge != nil && same(*s.CurrentEdge, e) {
		return EdgeCurrent
	}
	for _, t := range s.MSTEdges {
		if same(t, e) {
			return EdgeInMST
		}
	}

	return EdgeIdle
}

func same(a, b core.Edge) bool {
	return a.SameEndpoints(b) && a.Weight == b.Weight
}

// NodeState is how a node is drawn at one step.
type NodeState struct {
	InMST       bool
	Highlighted bool
}

// ClassifyNode reports tree membership and emphasis of id.
func ClassifyNode(s mst.Step, id string) NodeState {
	return NodeState{InMST: s.InMST(id), Highlighted: s.Highlighted(id)}
}
