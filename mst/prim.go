package mst

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mstreplay/core"
)

// Steps runs Prim's algorithm on g from start and returns the complete trace.
//
// Error Conditions:
//   - ErrInvalidGraph       : g is nil.
//   - ErrEmptyStart         : start == "" on a non-empty graph.
//   - core.ErrNodeNotFound  : start is not a node of g.
//
// All three satisfy errors.Is(err, core.ErrInvalidInput). A graph with zero
// nodes yields an empty trace and no error.
//
// Steps:
//  1. Emit "none": start is the sole tree member, heap empty.
//  2. Push every edge touching start (normalized away from start), stable-sort
//     by weight, emit "insert".
//  3. While the heap is non-empty and the tree has < |V| nodes:
//     a. Remove heap[0].
//     b. Target already in the tree → emit "extract" describing the skip.
//     c. Otherwise accept the edge and its target, emit "extract".
//     d. Push edges from the new node to nodes outside the tree, stable-sort,
//     emit "update" if any were pushed.
//  4. Emit "none" with an empty heap and the tree summary.
//
// A disconnected graph ends when the start component's heap runs dry; nodes
// of other components never join the tree.
//
// Complexity: O(E · E log E) worst case because the heap is re-sorted after
// each batch; E is small for the graphs this package targets.
func Steps(g *core.Graph, start string) ([]Step, error) {
	// 1. Validate.
	if g == nil {
		return nil, ErrInvalidGraph
	}
	if g.NodeCount() == 0 {
		return []Step{}, nil
	}
	if start == "" {
		return nil, ErrEmptyStart
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("mst: start %q: %w", start, core.ErrNodeNotFound)
	}

	r := &primRun{
		g:      g,
		inTree: map[string]bool{start: true},
		nodes:  []string{start},
	}
	s := g.Label(start)

	// 2. Start node.
	r.emit(OpNone, nil,
		fmt.Sprintf("Starting Prim's algorithm from node %s", s),
		fmt.Sprintf("We begin by selecting node %s as our starting point. "+
			"This node will be the first node in our Minimum Spanning Tree (MST).", s),
		start)

	// 3. Seed the heap.
	initial, err := g.IncidentEdges(start)
	if err != nil {
		return nil, err
	}
	r.push(initial)
	r.emit(OpInsert, nil,
		fmt.Sprintf("Added all edges from node %s to the min-heap", s),
		fmt.Sprintf("We identify all edges connected to our starting node %s and add them to the min-heap. "+
			"The min-heap ensures we always get the edge with minimum weight.", s),
		start)

	// 4. Main loop.
	total := g.NodeCount()
	for len(r.heap) > 0 && len(r.nodes) < total {
		e := r.pop()
		from, to := g.Label(e.Source), g.Label(e.Target)
		w := core.FormatWeight(e.Weight)

		// 4a. Cycle avoidance.
		if r.inTree[e.Target] {
			r.emit(OpExtract, &e,
				fmt.Sprintf("Edge %s-%s (weight: %s) connects to node %s which is already in MST. Skipping.", from, to, w, to),
				"This edge would create a cycle, so we discard it and continue with the next minimum edge.",
				e.Source, e.Target)
			continue
		}

		// 4b. Accept.
		r.inTree[e.Target] = true
		r.nodes = append(r.nodes, e.Target)
		r.edges = append(r.edges, e)
		r.emit(OpExtract, &e,
			fmt.Sprintf("Added edge %s-%s (weight: %s) to MST", from, to, w),
			fmt.Sprintf("We add this edge to our MST and include node %s. The MST now has %d edge(s) and %d node(s).",
				to, len(r.edges), len(r.nodes)),
			e.Source, e.Target)

		// 4c. Expand the frontier from the new node.
		incident, err := g.IncidentEdges(e.Target)
		if err != nil {
			return nil, err
		}
		fresh := make([]core.Edge, 0, len(incident))
		for _, ne := range incident {
			if !r.inTree[ne.Target] {
				fresh = append(fresh, ne)
			}
		}
		if len(fresh) > 0 {
			r.push(fresh)
			r.emit(OpUpdate, nil,
				fmt.Sprintf("Added edges from node %s to the min-heap", to),
				fmt.Sprintf("We add all edges from the newly added node %s to unvisited nodes into our min-heap.", to),
				e.Target)
		}
	}

	// 5. Summary.
	r.heap = nil
	explanation := fmt.Sprintf("Algorithm completed! We found a Minimum Spanning Tree with %d edges and total weight %s.",
		len(r.edges), core.FormatWeight(core.TotalWeight(r.edges)))
	if missing := r.unreached(); len(missing) > 0 {
		explanation += fmt.Sprintf(" Nodes %s are not reachable from %s and stay outside the tree.",
			strings.Join(missing, ", "), s)
	}
	r.emit(OpNone, nil, "Prim's algorithm completed. MST found!", explanation)

	return r.steps, nil
}

// primRun is the mutable state of one Steps call. Every emitted Step copies
// it, so later mutation never reaches earlier snapshots.
type primRun struct {
	g      *core.Graph
	inTree map[string]bool
	nodes  []string
	edges  []core.Edge
	heap   []HeapEntry
	steps  []Step
}

// push appends a batch to the heap and restores ascending priority order.
// sort.SliceStable keeps earlier entries ahead of later ones on equal weight.
func (r *primRun) push(batch []core.Edge) {
	for _, e := range batch {
		r.heap = append(r.heap, HeapEntry{Edge: e, Priority: e.Weight})
	}
	sort.SliceStable(r.heap, func(i, j int) bool {
		return r.heap[i].Priority < r.heap[j].Priority
	})
}

// pop removes and returns the minimum entry's edge.
func (r *primRun) pop() core.Edge {
	e := r.heap[0].Edge
	r.heap = r.heap[1:]

	return e
}

// emit snapshots the current state.
func (r *primRun) emit(op HeapOperation, current *core.Edge, desc, detail string, highlight ...string) {
	snap := Step{
		MSTNodes:    r.nodes,
		MSTEdges:    r.edges,
		Heap:        r.heap,
		CurrentEdge: current,
		Description: desc,
		Explanation: detail,
		Operation:   op,
		Highlight:   highlight,
	}
	r.steps = append(r.steps, snap.Clone())
}

// unreached lists labels of nodes outside the tree, in declaration order.
func (r *primRun) unreached() []string {
	var out []string
	for _, id := range r.g.NodeIDs() {
		if !r.inTree[id] {
			out = append(out, r.g.Label(id))
		}
	}

	return out
}
