package dfa

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/symbols"
)

// Automaton couples a graph with a start vertex and an accepting set.
type Automaton[S any, T comparable] struct {
	graph    *core.Graph[S, T]
	start    core.VertexID
	accepted map[core.VertexID]bool
	alphabet *symbols.Set[T]
}

// New wraps g with the given start vertex. The automaton takes ownership of
// g; the caller must not mutate it afterwards. The accepting set starts empty.
//
// Errors:
//   - ErrInvalidArgument if g is nil or start is not a vertex of g.
func New[S any, T comparable](g *core.Graph[S, T], start core.VertexID, opts ...Option[T]) (*Automaton[S, T], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidArgument)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start vertex %d not in graph", ErrInvalidArgument, start)
	}
	o := options[T]{alphabet: symbols.New[T]()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Automaton[S, T]{
		graph:    g,
		start:    start,
		accepted: make(map[core.VertexID]bool),
		alphabet: o.alphabet,
	}, nil
}

// Start returns the start vertex.
func (a *Automaton[S, T]) Start() core.VertexID { return a.start }

// Graph returns the underlying graph. Treat it as read-only.
func (a *Automaton[S, T]) Graph() *core.Graph[S, T] { return a.graph }

// Alphabet returns a copy of the declared alphabet.
func (a *Automaton[S, T]) Alphabet() *symbols.Set[T] { return a.alphabet.Clone() }

// IsAccepted reports whether v is an accepting vertex.
func (a *Automaton[S, T]) IsAccepted(v core.VertexID) bool {
	return a.accepted[v]
}

// SetAccepted adds v to or removes v from the accepting set.
//
// Errors:
//   - ErrInvalidArgument if v is not a vertex of the graph.
func (a *Automaton[S, T]) SetAccepted(v core.VertexID, accepting bool) error {
	if !a.graph.HasVertex(v) {
		return fmt.Errorf("%w: vertex %d not in graph", ErrInvalidArgument, v)
	}
	if accepting {
		a.accepted[v] = true
	} else {
		delete(a.accepted, v)
	}

	return nil
}

// Accepted returns the accepting vertices in storage order.
func (a *Automaton[S, T]) Accepted() []core.VertexID {
	out := make([]core.VertexID, 0, len(a.accepted))
	for _, v := range a.graph.Vertices() {
		if a.accepted[v] {
			out = append(out, v)
		}
	}

	return out
}
