// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade (Stats).
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a snapshot of catalog sizes and edge classification.
type GraphStats struct {
	VertexCount   int // live vertices
	EdgeCount     int // live edges
	SelfLoopCount int // live edges with From == To
	WildcardCount int // live edges with no label
}

// Stats produces a deterministic, read-only snapshot of catalog sizes,
// including a classification of edges into self-loops and wildcards.
//
// Implementation:
//   - Stage 1: Copy the O(1) counters.
//   - Stage 2: Scan the edge arena once and classify live edges.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(E_total), Space O(1) plus the returned struct.
//
// AI-Hints:
//   - After automaton minimization a wildcard edge is either a self-loop or
//     leads into a vertex that carries a wildcard self-loop.
func (g *Graph[S, T]) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: g.vertexCount,
		EdgeCount:   g.edgeCount,
	}
	for i := range g.edges {
		e := g.edges[i]
		if !e.alive {
			continue
		}
		if e.from == e.to {
			stats.SelfLoopCount++
		}
		if e.label == nil {
			stats.WildcardCount++
		}
	}

	return &stats
}
