// Package core provides the generic directed graph that every automaton in
// this module is built on.
//
// The Graph G = (V,E) is an arena: vertices and edges live in slices and are
// addressed by integer handles (VertexID, EdgeID). Adjacency is stored per
// vertex as ordered handle lists, so there are no owning cross references
// between vertices and edges.
//
//   - Vertices carry an arbitrary payload of type S.
//   - Edges are directed From→To and carry an optional label: a set of
//     symbols of type T, or nil meaning "wildcard" (matches any symbol).
//   - Parallel edges and self-loops are always legal.
//   - Removed handles are tombstoned and never reused inside one graph.
//
// Determinism:
//
//	Vertices(), Edges(), Outbound() and Inbound() all return handles in
//	storage (insertion) order. Automaton matching relies on this order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(payload S) VertexID                          // O(1)
//	HasVertex(v VertexID) bool                             // O(1)
//	RemoveVerticesWhere(pred func(VertexID, S) bool) int   // O(V+E), cascades edges
//
//	// Edge lifecycle
//	AddEdge(from, to VertexID) (EdgeID, error)             // O(1), wildcard label
//	SetLabel(e EdgeID, symbols ...T) error                 // O(len(symbols))
//	ClearLabel(e EdgeID) error                             // O(1)
//	RemoveEdge(e EdgeID) error                             // O(deg)
//
//	// Query
//	Vertices() / Edges() / Outbound(v) / Inbound(v)
//	OutDegree(v) / InDegree(v) / VertexCount() / EdgeCount()
//
//	// Cloning
//	Clone() *Graph                                         // handle-preserving deep copy
//	Compact() (*Graph, map[VertexID]VertexID)              // dense renumbered copy
//
// Concurrency:
//
//	The graph has no internal locking. It is meant to be exclusively owned
//	while it is being built and shared read-only afterwards. Mutating it
//	while another goroutine reads it is a data race.
//
// Errors:
//
//	ErrVertexNotFound – handle does not name a live vertex
//	ErrEdgeNotFound   – handle does not name a live edge
package core
