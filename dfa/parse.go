package dfa

import "github.com/katalvlaran/lvlath-automata/core"

// Parse runs input through the automaton and returns its verdict.
//
// Rules:
//   - An empty accepting set rejects everything.
//   - At each step the first outbound edge, in storage order, that is a
//     wildcard or contains the symbol is taken. No edge means Reject.
//   - After the last symbol the verdict is Accept iff the current vertex
//     is accepting.
func (a *Automaton[S, T]) Parse(input []T) Verdict {
	v, _ := a.walk(input, false)

	return v
}

// ParsePath is Parse that also returns the walk taken.
func (a *Automaton[S, T]) ParsePath(input []T) (Verdict, Trace) {
	return a.walk(input, true)
}

func (a *Automaton[S, T]) walk(input []T, record bool) (Verdict, Trace) {
	var tr Trace
	if len(a.accepted) == 0 {
		return Reject, tr
	}
	cur := a.start
	if record {
		tr.Vertices = append(tr.Vertices, cur)
	}
	for _, sym := range input {
		e, ok := a.step(cur, sym)
		if !ok {
			return Reject, tr
		}
		cur = e.To
		if record {
			tr.Vertices = append(tr.Vertices, cur)
			tr.Edges = append(tr.Edges, e.ID)
		}
	}
	if a.accepted[cur] {
		return Accept, tr
	}

	return Reject, tr
}

// step returns the first outbound edge of v that matches sym.
func (a *Automaton[S, T]) step(v core.VertexID, sym T) (core.Edge[T], bool) {
	edges, _ := a.graph.OutboundEdges(v)
	for _, e := range edges {
		if e.Matches(sym) {
			return e, true
		}
	}

	return core.Edge[T]{}, false
}
