// File: methods_clone.go
// Role: Cloning and compaction of graph instances.
// Determinism:
//   - Clone keeps every handle (tombstones included) so handles are valid on the copy.
//   - Compact renumbers live vertices and edges densely in storage order.
// AI-HINT (file):
//   - Both copies are fully independent: label sets are cloned, never shared.

package core

// Clone returns a deep, handle-preserving copy of the Graph.
//
// Identity:
//   - A VertexID or EdgeID valid on g is valid on the clone and names the
//     structurally corresponding element.
//
// Complexity: O(V + E)
func (g *Graph[S, T]) Clone() *Graph[S, T] {
	clone := &Graph[S, T]{
		vertices:    make([]vertexSlot[S], len(g.vertices)),
		edges:       make([]edgeSlot[T], len(g.edges)),
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
	}
	for i, v := range g.vertices {
		clone.vertices[i] = vertexSlot[S]{
			payload: v.payload,
			alive:   v.alive,
			out:     append([]EdgeID(nil), v.out...),
			in:      append([]EdgeID(nil), v.in...),
		}
	}
	for i, e := range g.edges {
		ne := edgeSlot[T]{from: e.from, to: e.to, alive: e.alive}
		if e.label != nil {
			ne.label = e.label.Clone()
		}
		clone.edges[i] = ne
	}

	return clone
}

// Compact returns a copy holding only live vertices and edges, renumbered
// from zero, plus the mapping old VertexID → new VertexID.
//
// Behavior highlights:
//   - Outbound edge order per vertex is preserved (edges are re-added in creation order).
//
// Complexity: O(V + E)
func (g *Graph[S, T]) Compact() (*Graph[S, T], map[VertexID]VertexID) {
	out := NewGraph[S, T]()
	remap := make(map[VertexID]VertexID, g.vertexCount)
	for i := range g.vertices {
		if g.vertices[i].alive {
			remap[VertexID(i)] = out.AddVertex(g.vertices[i].payload)
		}
	}
	for i := range g.edges {
		e := g.edges[i]
		if !e.alive {
			continue
		}
		// Endpoints of a live edge are always live, so remap lookups cannot miss.
		eid, _ := out.AddEdge(remap[e.from], remap[e.to])
		if e.label != nil {
			out.edges[eid].label = e.label.Clone()
		}
	}

	return out, remap
}
