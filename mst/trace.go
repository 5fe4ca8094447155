package mst

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/katalvlaran/mstreplay/core"
)

// Trace is an immutable, identified run of Steps over one graph.
type Trace struct {
	// ID distinguishes runs in logs and metrics.
	ID uuid.UUID

	start string
	graph *core.Graph
	steps []Step
}

// NewTrace generates the trace of g from start. Errors are those of Steps.
func NewTrace(g *core.Graph, start string) (*Trace, error) {
	steps, err := Steps(g, start)
	if err != nil {
		return nil, err
	}

	return &Trace{ID: uuid.New(), start: start, graph: g, steps: steps}, nil
}

// Start returns the start node ID.
func (t *Trace) Start() string { return t.start }

// Graph returns the traced graph.
func (t *Trace) Graph() *core.Graph { return t.graph }

// Len returns the number of steps.
func (t *Trace) Len() int { return len(t.steps) }

// At returns a copy of step i, or false when i is out of range.
func (t *Trace) At(i int) (Step, bool) {
	if i < 0 || i >= len(t.steps) {
		return Step{}, false
	}

	return t.steps[i].Clone(), true
}

// Steps returns a deep copy of every step.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Clone()
	}

	return out
}

// Final returns the last step, or false for an empty trace.
func (t *Trace) Final() (Step, bool) {
	return t.At(len(t.steps) - 1)
}

// Edges returns the tree edges of the final step in acceptance order.
func (t *Trace) Edges() []core.Edge {
	final, ok := t.Final()
	if !ok {
		return []core.Edge{}
	}

	return final.MSTEdges
}

// Weight returns the total weight of the final tree.
func (t *Trace) Weight() float64 {
	return core.TotalWeight(t.Edges())
}

// Unreached returns, in declaration order, the node IDs outside the final
// tree. It is empty when the graph is connected.
func (t *Trace) Unreached() []string {
	final, _ := t.Final()
	out := []string{}
	for _, id := range t.graph.NodeIDs() {
		if !final.InMST(id) {
			out = append(out, id)
		}
	}

	return out
}

// traceDocument is the JSON shape of a Trace.
type traceDocument struct {
	ID     string      `json:"id"`
	Start  string      `json:"start"`
	Nodes  []core.Node `json:"nodes"`
	Edges  []core.Edge `json:"edges"`
	Weight float64     `json:"weight"`
	Steps  []Step      `json:"steps"`
}

// MarshalJSON encodes the graph, the steps and the summary weight.
func (t *Trace) MarshalJSON() ([]byte, error) {
	return json.Marshal(traceDocument{
		ID:     t.ID.String(),
		Start:  t.start,
		Nodes:  t.graph.Nodes(),
		Edges:  t.graph.Edges(),
		Weight: t.Weight(),
		Steps:  t.steps,
	})
}
