package dfa

import "fmt"

// CheckDeterministic reports the first vertex, in storage order, with two
// outbound edges that can match the same symbol. A wildcard overlaps every
// edge with a non-empty label and every other wildcard.
//
// Parse resolves such overlaps by taking the earlier edge, so an automaton
// that fails this check still parses; the check exists for callers who want
// to fail fast on ambiguous construction.
//
// Errors:
//   - ErrNondeterministic naming the vertex and both edges.
func (a *Automaton[S, T]) CheckDeterministic() error {
	for _, v := range a.graph.Vertices() {
		edges, _ := a.graph.OutboundEdges(v)
		for i := 0; i < len(edges); i++ {
			for j := i + 1; j < len(edges); j++ {
				ei, ej := edges[i], edges[j]
				overlap := false
				switch {
				case ei.IsWildcard() && ej.IsWildcard():
					overlap = true
				case ei.IsWildcard():
					overlap = ej.Label.Len() > 0
				case ej.IsWildcard():
					overlap = ei.Label.Len() > 0
				default:
					overlap = ei.Label.Intersects(ej.Label)
				}
				if overlap {
					return fmt.Errorf("%w: vertex %d, edges %d and %d", ErrNondeterministic, v, ei.ID, ej.ID)
				}
			}
		}
	}

	return nil
}
