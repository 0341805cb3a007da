package dfa

import (
	"github.com/katalvlaran/lvlath-automata/core"
)

// Minimize returns a new, compacted automaton with dead ends, unreachable
// vertices, and wildcard edges removed. The receiver is not modified.
//
// Algorithm (repeated until a full sweep changes nothing):
//  1. Remove every non-accepting vertex other than start with no outbound edges.
//  2. Remove every vertex other than start with no inbound edges.
//  3. Splice every wildcard edge u→v with u != v: copy each outbound edge of v
//     onto u with the same label, mark u accepting if v is, then remove u→v.
//     Edges out of a vertex carrying a wildcard self-loop are left in place.
//
// Behavior highlights:
//   - Start always survives, so the result is a valid automaton.
//   - The result never has more vertices than the receiver.
//   - No equivalence-class merging is performed.
//
// Complexity: O(sweeps · (V + E·deg)).
func (a *Automaton[S, T]) Minimize() *Automaton[S, T] {
	g := a.graph.Clone()
	accepted := make(map[core.VertexID]bool, len(a.accepted))
	for v := range a.accepted {
		accepted[v] = true
	}
	start := a.start

	for changed := true; changed; {
		changed = false

		// 1. Dead ends.
		if g.RemoveVerticesWhere(func(v core.VertexID, _ S) bool {
			return v != start && !accepted[v] && g.OutDegree(v) == 0
		}) > 0 {
			changed = true
		}

		// 2. Unreachable.
		if g.RemoveVerticesWhere(func(v core.VertexID, _ S) bool {
			return v != start && g.InDegree(v) == 0
		}) > 0 {
			changed = true
		}

		// 3. Wildcard splicing over the edges present when the sweep began.
		for _, e := range g.Edges() {
			if !e.IsWildcard() || e.IsSelfLoop() || !g.HasEdge(e.ID) {
				continue
			}
			if spliceWildcard(g, e, accepted) {
				changed = true
			}
		}

		for v := range accepted {
			if !g.HasVertex(v) {
				delete(accepted, v)
			}
		}
	}

	compact, remap := g.Compact()
	out := &Automaton[S, T]{
		graph:    compact,
		start:    remap[start],
		accepted: make(map[core.VertexID]bool, len(accepted)),
		alphabet: a.alphabet.Clone(),
	}
	for v := range accepted {
		out.accepted[remap[v]] = true
	}

	return out
}

// spliceWildcard replaces the wildcard edge e = u→v by copies of v's
// outbound edges leaving u. It reports false and leaves e alone when v has a
// wildcard self-loop, whose copy would be another wildcard u→v.
func spliceWildcard[S any, T comparable](g *core.Graph[S, T], e core.Edge[T], accepted map[core.VertexID]bool) bool {
	targets, _ := g.OutboundEdges(e.To)
	for _, f := range targets {
		if f.IsWildcard() && f.IsSelfLoop() {
			return false
		}
	}

	for _, f := range targets {
		nid, _ := g.AddEdge(e.From, f.To)
		if f.Label != nil {
			_ = g.SetLabel(nid, f.Label.Values()...)
		}
	}
	if accepted[e.To] {
		accepted[e.From] = true
	}
	_ = g.RemoveEdge(e.ID)

	return true
}
