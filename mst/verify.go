package mst

import (
	"fmt"
	"math"
)

// weightTolerance absorbs summation-order differences between Prim and Kruskal.
const weightTolerance = 1e-9

// Verify checks a trace against the guarantees the replay relies on.
//
// Checks, in order:
//  1. An empty trace is valid only for an empty graph.
//  2. The first step holds exactly the start node.
//  3. Every step: no duplicate tree nodes, |edges| == |nodes|-1, each edge
//     attaches the node that joined right after its source, heap ascending.
//  4. Tree nodes of step k are a prefix of those of step k+1.
//  5. The final heap is empty and the final tree spans exactly the nodes
//     reachable from start.
//  6. The final weight equals Kruskal's forest weight on the start component.
//
// Every failure wraps ErrTraceInvariant and names the offending step.
//
// Complexity: O(S · (V + H) + E log E) for S steps and heap size H.
func Verify(t *Trace) error {
	if t == nil || t.graph == nil {
		return ErrInvalidGraph
	}

	// 1. Empty.
	if len(t.steps) == 0 {
		if t.graph.NodeCount() != 0 {
			return fmt.Errorf("%w: empty trace for a graph with %d nodes", ErrTraceInvariant, t.graph.NodeCount())
		}

		return nil
	}

	// 2. Start.
	first := t.steps[0]
	if len(first.MSTNodes) != 1 || first.MSTNodes[0] != t.start {
		return fmt.Errorf("%w: step 0 tree %v, want [%s]", ErrTraceInvariant, first.MSTNodes, t.start)
	}

	// 3-4. Per step.
	for i, s := range t.steps {
		if err := checkStep(s); err != nil {
			return fmt.Errorf("%w: step %d: %s", ErrTraceInvariant, i, err.Error())
		}
		if i > 0 && !isPrefix(t.steps[i-1].MSTNodes, s.MSTNodes) {
			return fmt.Errorf("%w: step %d: tree %v does not extend %v",
				ErrTraceInvariant, i, s.MSTNodes, t.steps[i-1].MSTNodes)
		}
	}

	// 5. Coverage.
	final := t.steps[len(t.steps)-1]
	if len(final.Heap) != 0 {
		return fmt.Errorf("%w: final heap holds %d entries", ErrTraceInvariant, len(final.Heap))
	}
	reach, err := t.graph.Reachable(t.start)
	if err != nil {
		return err
	}
	component := make(map[string]bool, len(reach))
	for _, id := range reach {
		component[id] = true
	}
	if len(final.MSTNodes) != len(reach) {
		return fmt.Errorf("%w: final tree has %d nodes, %d reachable",
			ErrTraceInvariant, len(final.MSTNodes), len(reach))
	}
	for _, id := range final.MSTNodes {
		if !component[id] {
			return fmt.Errorf("%w: node %s in tree but unreachable", ErrTraceInvariant, id)
		}
	}

	// 6. Optimality.
	forest, _, err := Kruskal(t.graph)
	if err != nil {
		return err
	}
	var want float64
	for _, e := range forest {
		if component[e.Source] {
			want += e.Weight
		}
	}
	if got := final.Weight(); math.Abs(got-want) > weightTolerance {
		return fmt.Errorf("%w: tree weight %g, minimum is %g", ErrTraceInvariant, got, want)
	}

	return nil
}

// checkStep validates the self-contained invariants of one snapshot.
func checkStep(s Step) error {
	pos := make(map[string]int, len(s.MSTNodes))
	for i, id := range s.MSTNodes {
		if _, dup := pos[id]; dup {
			return fmt.Errorf("duplicate tree node %s", id)
		}
		pos[id] = i
	}
	if len(s.MSTEdges) != len(s.MSTNodes)-1 {
		return fmt.Errorf("%d edges for %d nodes", len(s.MSTEdges), len(s.MSTNodes))
	}
	for i, e := range s.MSTEdges {
		if e.Target != s.MSTNodes[i+1] {
			return fmt.Errorf("edge %s does not attach node %s", e, s.MSTNodes[i+1])
		}
		if p, ok := pos[e.Source]; !ok || p > i {
			return fmt.Errorf("edge %s leaves a node outside the tree", e)
		}
	}
	for i := 1; i < len(s.Heap); i++ {
		if s.Heap[i].Priority < s.Heap[i-1].Priority {
			return fmt.Errorf("heap out of order at %d", i)
		}
	}

	return nil
}

// isPrefix reports whether a is a prefix of b.
func isPrefix(a, b []string) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
