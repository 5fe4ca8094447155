package core

import "fmt"

// walker carries breadth-first state for Reachable.
type walker struct {
	graph   *Graph
	queue   []string
	visited map[string]bool
	order   []string
}

// Reachable returns every node of the component containing start, in
// breadth-first order (start first, neighbors in edge declaration order).
//
// Complexity: O(V + E).
func (g *Graph) Reachable(start string) ([]string, error) {
	if !g.HasNode(start) {
		return nil, fmt.Errorf("Reachable(%q): %w", start, ErrNodeNotFound)
	}
	n := len(g.nodes)
	w := &walker{
		graph:   g,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
	}
	w.enqueue(start)
	w.loop()

	return w.order, nil
}

// enqueue marks id visited and appends it to the queue.
func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// loop drains the queue, recording visit order.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, id)

		// IDs in the queue are known nodes, so the lookup cannot fail.
		neighbors, _ := w.graph.NeighborIDs(id)
		for _, nbr := range neighbors {
			if !w.visited[nbr] {
				w.enqueue(nbr)
			}
		}
	}
}

// Connected reports whether every node is reachable from the first one.
// The empty graph counts as connected.
func (g *Graph) Connected() bool {
	if len(g.nodes) == 0 {
		return true
	}
	order, _ := g.Reachable(g.nodes[0].ID)

	return len(order) == len(g.nodes)
}
