// Package dfs implements cycle detection for directed core.Graphs.
// FindCycle uses three-color marking and back-edge detection. Self-loops are
// skipped: they are the one kind of cycle automaton rendering handles natively.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map)
package dfs

import "github.com/katalvlaran/lvlath-automata/core"

// FindCycle returns the first cycle through two or more distinct vertices that
// is reachable from start, as the vertex sequence [v0, v1, ..., vk] where an
// edge vk→v0 closes the cycle. It returns nil when the reachable subgraph is
// acyclic apart from self-loops.
func FindCycle[S any, T comparable](g *core.Graph[S, T], start core.VertexID) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	state := make(map[core.VertexID]int, g.VertexCount())
	var path []core.VertexID

	var visit func(v core.VertexID) []core.VertexID
	visit = func(v core.VertexID) []core.VertexID {
		state[v] = Gray
		path = append(path, v)
		edges, _ := g.OutboundEdges(v)
		for _, e := range edges {
			if e.IsSelfLoop() {
				continue
			}
			switch state[e.To] {
			case White:
				if cyc := visit(e.To); cyc != nil {
					return cyc
				}
			case Gray:
				// Back-edge: the cycle is the path suffix starting at e.To.
				for i := len(path) - 1; i >= 0; i-- {
					if path[i] == e.To {
						return append([]core.VertexID(nil), path[i:]...)
					}
				}
			}
		}
		path = path[:len(path)-1]
		state[v] = Black

		return nil
	}

	return visit(start), nil
}
