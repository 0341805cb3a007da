// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns handles in insertion order.
//
// AI-Hints (file):
//   - Vertices() is a stable enumeration surface; rely on it for reproducible outputs.
//   - RemoveVerticesWhere is the only vertex removal path and always cascades edges.
package core

// AddVertex appends a new vertex carrying payload and returns its handle.
//
// Implementation:
//   - Stage 1: Append a live slot to the vertex arena.
//   - Stage 2: Bump the live vertex counter.
//
// Returns:
//   - VertexID: handle of the new vertex; handles grow monotonically.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[S, T]) AddVertex(payload S) VertexID {
	g.vertices = append(g.vertices, vertexSlot[S]{payload: payload, alive: true})
	g.vertexCount++

	return VertexID(len(g.vertices) - 1)
}

// HasVertex reports whether v names a live vertex.
// Complexity: O(1).
func (g *Graph[S, T]) HasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.vertices) && g.vertices[v].alive
}

// Vertex returns the read-only view of v.
//
// Errors:
//   - ErrVertexNotFound: if v is not a live vertex.
func (g *Graph[S, T]) Vertex(v VertexID) (Vertex[S], error) {
	if !g.HasVertex(v) {
		return Vertex[S]{}, ErrVertexNotFound
	}

	return Vertex[S]{ID: v, Payload: g.vertices[v].payload}, nil
}

// Payload returns the payload attached to v.
//
// Errors:
//   - ErrVertexNotFound: if v is not a live vertex.
func (g *Graph[S, T]) Payload(v VertexID) (S, error) {
	var zero S
	if !g.HasVertex(v) {
		return zero, ErrVertexNotFound
	}

	return g.vertices[v].payload, nil
}

// Vertices returns all live vertex handles in insertion order.
//
// Complexity:
//   - Time O(V_total), Space O(V) where V_total includes tombstones.
//
// AI-Hints:
//   - The returned slice is a copy; mutating the graph while ranging over it is safe
//     as long as you re-check HasVertex for handles you visit later.
func (g *Graph[S, T]) Vertices() []VertexID {
	ids := make([]VertexID, 0, g.vertexCount)
	for i := range g.vertices {
		if g.vertices[i].alive {
			ids = append(ids, VertexID(i))
		}
	}

	return ids
}

// VertexCount returns the current number of live vertices.
// Complexity: O(1).
func (g *Graph[S, T]) VertexCount() int {
	return g.vertexCount
}

// RemoveVerticesWhere deletes every live vertex for which pred returns true,
// together with all edges touching it, and returns how many vertices were removed.
//
// Implementation:
//   - Stage 1: Evaluate pred against a snapshot of live vertices (pred sees the
//     graph as it was before any removal in this call).
//   - Stage 2: For each match, remove inbound and outbound edges, then tombstone the slot.
//
// Behavior highlights:
//   - RemoveVerticesWhere(always-true) leaves the graph with no vertices and no edges.
//   - Self-loops are removed exactly once.
//
// Complexity:
//   - Time O(V + E·deg) for removal bookkeeping, Space O(V) for the snapshot.
func (g *Graph[S, T]) RemoveVerticesWhere(pred func(v VertexID, payload S) bool) int {
	var doomed []VertexID
	for _, v := range g.Vertices() {
		if pred(v, g.vertices[v].payload) {
			doomed = append(doomed, v)
		}
	}

	for _, v := range doomed {
		slot := &g.vertices[v]
		// Copy: removeEdge rewrites slot.out/slot.in as it goes.
		incident := make([]EdgeID, 0, len(slot.out)+len(slot.in))
		incident = append(incident, slot.out...)
		incident = append(incident, slot.in...)
		for _, e := range incident {
			if g.edges[e].alive {
				g.removeEdge(e)
			}
		}
		slot.alive = false
		slot.out, slot.in = nil, nil
		g.vertexCount--
	}

	return len(doomed)
}
