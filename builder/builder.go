// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// builder.go: the Builder: working graph, accepting set, alphabet, and the
// sticky error.
//
// Ownership:
//   • The Builder exclusively owns its graph and alphabet.
//   • A State holds only a vertex handle and a pointer back to its Builder.

package builder

import (
	"strings"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dfa"
	"github.com/katalvlaran/lvlath-automata/symbols"
)

// Builder grows an automaton graph through State combinators.
// Not safe for concurrent use.
type Builder[T comparable] struct {
	cfg      builderConfig[T]
	graph    *core.Graph[string, T]
	start    core.VertexID
	accepted map[core.VertexID]bool
	alphabet *symbols.Set[T]
	err      error
}

// New creates a Builder over the given alphabet (duplicates dropped) with
// a single start vertex.
// Complexity: O(len(alphabet) + len(opts)).
func New[T comparable](alphabet []T, opts ...Option[T]) *Builder[T] {
	cfg := newBuilderConfig(opts...)
	g := core.NewGraph[string, T]()

	return &Builder[T]{
		cfg:      cfg,
		graph:    g,
		start:    g.AddVertex(cfg.startPayload),
		accepted: make(map[core.VertexID]bool),
		alphabet: symbols.New(alphabet...),
	}
}

// Start returns the State positioned on the start vertex.
func (b *Builder[T]) Start() State[T] {
	return State[T]{b: b, at: b.start}
}

// Err returns the first error recorded by a combinator, or nil.
func (b *Builder[T]) Err() error { return b.err }

// Alphabet returns a copy of the builder's alphabet.
func (b *Builder[T]) Alphabet() *symbols.Set[T] { return b.alphabet.Clone() }

// Graph returns a snapshot of the working graph. Changes to the snapshot do
// not affect the Builder.
func (b *Builder[T]) Graph() *core.Graph[string, T] { return b.graph.Clone() }

// Accepted returns the accepting vertices in storage order.
func (b *Builder[T]) Accepted() []core.VertexID {
	var out []core.VertexID
	for _, v := range b.graph.Vertices() {
		if b.accepted[v] {
			out = append(out, v)
		}
	}

	return out
}

// GenerateParser compiles the current graph into an automaton and returns
// its Minimize result. The working graph is copied first, so the Builder may
// keep growing and be compiled again.
//
// Errors:
//   - the sticky error, if any combinator failed.
func (b *Builder[T]) GenerateParser() (*dfa.Automaton[string, T], error) {
	if b.err != nil {
		return nil, b.err
	}
	a, err := dfa.New(b.graph.Clone(), b.start, dfa.WithAlphabetSet(b.alphabet))
	if err != nil {
		return nil, wrapf(MethodGenerateParser, ErrInvalidArgument, "%v", err)
	}
	for v := range b.accepted {
		if err := a.SetAccepted(v, true); err != nil {
			return nil, wrapf(MethodGenerateParser, ErrInvalidArgument, "%v", err)
		}
	}

	return a.Minimize(), nil
}

// fail records err as the sticky error unless one is already set.
func (b *Builder[T]) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// describe renders a symbol set for vertex payloads, e.g. "[a b]".
func (b *Builder[T]) describe(syms []T) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = b.cfg.printer(s)
	}

	return "[" + strings.Join(parts, payloadSeparator) + "]"
}

// complement returns the alphabet members not in syms, in alphabet order.
func (b *Builder[T]) complement(syms []T) []T {
	return symbols.New(syms...).Complement(b.alphabet).Values()
}

// link adds an edge from → to labelled with syms; a nil syms slice yields a wildcard.
func (b *Builder[T]) link(from, to core.VertexID, syms []T) {
	eid, _ := b.graph.AddEdge(from, to)
	if syms != nil {
		_ = b.graph.SetLabel(eid, syms...)
	}
}
