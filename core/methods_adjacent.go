// File: methods_adjacent.go
// Role: Adjacency queries (outbound/inbound edge lists and degrees).
//
// Determinism:
//   - Outbound/Inbound return handles in storage order, which is the order the
//     edges were added. Automaton parsing scans Outbound in exactly this order.
//
// AI-Hints (file):
//   - A self-loop appears once in Outbound(v) and once in Inbound(v).
//   - Returned slices are copies; the graph may be mutated while you hold them.
package core

// Outbound returns the handles of edges leaving v, in storage order.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(out-degree).
func (g *Graph[S, T]) Outbound(v VertexID) ([]EdgeID, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return append([]EdgeID(nil), g.vertices[v].out...), nil
}

// OutboundEdges returns the views of edges leaving v, in storage order.
//
// Errors:
//   - ErrVertexNotFound.
func (g *Graph[S, T]) OutboundEdges(v VertexID) ([]Edge[T], error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge[T], 0, len(g.vertices[v].out))
	for _, e := range g.vertices[v].out {
		out = append(out, g.edgeView(e))
	}

	return out, nil
}

// Inbound returns the handles of edges entering v, in storage order.
//
// Errors:
//   - ErrVertexNotFound.
func (g *Graph[S, T]) Inbound(v VertexID) ([]EdgeID, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	return append([]EdgeID(nil), g.vertices[v].in...), nil
}

// OutDegree returns the number of edges leaving v (self-loops count once).
// A missing vertex has degree 0.
func (g *Graph[S, T]) OutDegree(v VertexID) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.vertices[v].out)
}

// InDegree returns the number of edges entering v (self-loops count once).
// A missing vertex has degree 0.
func (g *Graph[S, T]) InDegree(v VertexID) int {
	if !g.HasVertex(v) {
		return 0
	}

	return len(g.vertices[v].in)
}
