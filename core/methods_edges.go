// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/SetLabel/ClearLabel/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order (ascending EdgeID).
// AI-HINT (file):
//   - AddEdge always produces a wildcard edge; label it with SetLabel afterwards.
//   - Parallel edges and self-loops are legal; nothing here rejects them.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/symbols"
)

// AddEdge creates a new directed edge from→to with an unset (wildcard) label.
//
// Steps:
//  1. Validate both endpoints are live vertices.
//  2. Append a live slot to the edge arena.
//  3. Register the handle on from.out and to.in (a self-loop lands on both lists of one vertex).
//
// Errors:
//   - ErrVertexNotFound (wrapped with the missing handle).
//
// Complexity: O(1) amortized.
func (g *Graph[S, T]) AddEdge(from, to VertexID) (EdgeID, error) {
	if !g.HasVertex(from) {
		return 0, fmt.Errorf("AddEdge: from=%d: %w", from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return 0, fmt.Errorf("AddEdge: to=%d: %w", to, ErrVertexNotFound)
	}

	g.edges = append(g.edges, edgeSlot[T]{from: from, to: to, alive: true})
	eid := EdgeID(len(g.edges) - 1)
	g.vertices[from].out = append(g.vertices[from].out, eid)
	g.vertices[to].in = append(g.vertices[to].in, eid)
	g.edgeCount++

	return eid, nil
}

// SetLabel replaces the label of e with the set of syms (duplicates dropped,
// first-occurrence order kept). An empty syms list yields an edge that matches nothing;
// use ClearLabel for a wildcard.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph[S, T]) SetLabel(e EdgeID, syms ...T) error {
	if !g.HasEdge(e) {
		return fmt.Errorf("SetLabel: edge=%d: %w", e, ErrEdgeNotFound)
	}
	g.edges[e].label = symbols.New(syms...)

	return nil
}

// ClearLabel makes e a wildcard edge.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph[S, T]) ClearLabel(e EdgeID) error {
	if !g.HasEdge(e) {
		return fmt.Errorf("ClearLabel: edge=%d: %w", e, ErrEdgeNotFound)
	}
	g.edges[e].label = nil

	return nil
}

// HasEdge reports whether e names a live edge.
func (g *Graph[S, T]) HasEdge(e EdgeID) bool {
	return e >= 0 && int(e) < len(g.edges) && g.edges[e].alive
}

// Edge returns the read-only view of e.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph[S, T]) Edge(e EdgeID) (Edge[T], error) {
	if !g.HasEdge(e) {
		return Edge[T]{}, ErrEdgeNotFound
	}

	return g.edgeView(e), nil
}

// Edges returns all live edges in creation order.
// Complexity: O(E_total).
func (g *Graph[S, T]) Edges() []Edge[T] {
	out := make([]Edge[T], 0, g.edgeCount)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, g.edgeView(EdgeID(i)))
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph[S, T]) EdgeCount() int {
	return g.edgeCount
}

// RemoveEdge deletes e from the graph.
//
// Errors:
//   - ErrEdgeNotFound.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph[S, T]) RemoveEdge(e EdgeID) error {
	if !g.HasEdge(e) {
		return fmt.Errorf("RemoveEdge: edge=%d: %w", e, ErrEdgeNotFound)
	}
	g.removeEdge(e)

	return nil
}

// removeEdge unlinks a live edge from both endpoint lists and tombstones it.
func (g *Graph[S, T]) removeEdge(e EdgeID) {
	slot := &g.edges[e]
	from, to := &g.vertices[slot.from], &g.vertices[slot.to]
	from.out = without(from.out, e)
	to.in = without(to.in, e)
	slot.alive = false
	slot.label = nil
	g.edgeCount--
}

// edgeView builds the public view of a live edge slot.
func (g *Graph[S, T]) edgeView(e EdgeID) Edge[T] {
	slot := g.edges[e]

	return Edge[T]{ID: e, From: slot.from, To: slot.to, Label: slot.label}
}

// without returns ids minus e, preserving order. The backing array is reused.
func without(ids []EdgeID, e EdgeID) []EdgeID {
	out := ids[:0]
	for _, id := range ids {
		if id != e {
			out = append(out, id)
		}
	}

	return out
}
