package mst

import (
	"sort"

	"github.com/katalvlaran/mstreplay/core"
)

// Kruskal computes a minimum spanning forest of g with a disjoint-set
// (union-find) structure using path compression and union by rank. It is the
// reference oracle for Verify and never drives the replay.
//
// Error Conditions:
//   - ErrInvalidGraph : g is nil.
//
// Steps:
//  1. Validate g; zero or one node → empty forest, weight 0.
//  2. Collect edges, skipping loops.
//  3. Stable-sort by weight (declaration order breaks ties).
//  4. Initialize parent[] and rank[] per node.
//  5. Accept every edge whose endpoints lie in different sets.
//  6. Stop early at |V|-1 edges.
//
// A disconnected graph yields one tree per component, |V|-c edges in total.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := g.NodeIDs()
	if len(vertices) <= 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect edges.
	all := g.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.Source == e.Target {
			continue
		}
		edges = append(edges, e)
	}

	// 3. Sort.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Disjoint sets.
	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, id := range vertices {
		parent[id] = id
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}

		return true
	}

	// 5. Build the forest.
	var (
		forest = make([]core.Edge, 0, len(vertices)-1)
		total  float64
	)
	for _, e := range edges {
		if !union(e.Source, e.Target) {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		// 6. Early exit.
		if len(forest) == len(vertices)-1 {
			break
		}
	}

	return forest, total, nil
}
