// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// state.go: the fluent combinators.
//
// Every combinator returns a new State and mutates the shared graph. Once
// the Builder holds an error, every combinator returns its receiver
// unchanged and adds nothing.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/core"
)

// State is a cursor on one vertex of a Builder's graph.
type State[T comparable] struct {
	b  *Builder[T]
	at core.VertexID
}

// Branch is one arm of Split: the symbols that select it and an optional
// body applied after those symbols. A nil Body goes straight to the
// convergence vertex.
type Branch[T comparable] struct {
	Symbols []T
	Body    func(State[T]) State[T]
}

// Vertex returns the cursor vertex.
func (s State[T]) Vertex() core.VertexID { return s.at }

// Builder returns the Builder this State belongs to.
func (s State[T]) Builder() *Builder[T] { return s.b }

// failed reports whether the Builder already holds an error.
func (s State[T]) failed() bool { return s.b.err != nil }

// step adds a fresh vertex reached from the cursor by syms.
func (s State[T]) step(payload string, syms []T) State[T] {
	v := s.b.graph.AddVertex(payload)
	s.b.link(s.at, v, syms)

	return State[T]{b: s.b, at: v}
}

// ExactlyOne consumes one symbol from syms and advances.
func (s State[T]) ExactlyOne(syms ...T) State[T] {
	if s.failed() {
		return s
	}
	if err := s.b.validateSymbols(MethodExactlyOne, syms); err != nil {
		s.b.fail(err)
		return s
	}

	return s.step(payloadAfter+s.b.describe(syms), append([]T{}, syms...))
}

// Exactly chains n ExactlyOne steps.
func (s State[T]) Exactly(n int, syms ...T) State[T] {
	if s.failed() {
		return s
	}
	if err := validateCount(MethodExactly, n); err != nil {
		s.b.fail(err)
		return s
	}
	for i := 0; i < n; i++ {
		s = s.ExactlyOne(syms...)
	}

	return s
}

// AtLeast consumes n symbols from syms, then any number more.
func (s State[T]) AtLeast(n int, syms ...T) State[T] {
	return s.atLeast(MethodAtLeast, n, syms)
}

// ZeroOrMore is AtLeast(0, syms...).
func (s State[T]) ZeroOrMore(syms ...T) State[T] { return s.atLeast(MethodZeroOrMore, 0, syms) }

// OneOrMore is AtLeast(1, syms...).
func (s State[T]) OneOrMore(syms ...T) State[T] { return s.atLeast(MethodOneOrMore, 1, syms) }

// atLeast implements AtLeast and its shorthands, tagging errors with method.
func (s State[T]) atLeast(method string, n int, syms []T) State[T] {
	if s.failed() {
		return s
	}
	if err := validateCount(method, n); err != nil {
		s.b.fail(err)
		return s
	}
	if err := s.b.validateSymbols(method, syms); err != nil {
		s.b.fail(err)
		return s
	}
	s = s.Exactly(n, syms...)
	s.b.link(s.at, s.at, append([]T{}, syms...))

	return s
}

// Range consumes min symbols from syms, then up to max-min optional ones,
// converging on one end vertex.
//
// Shape, with c0 the State after Exactly(min) and E the end vertex:
//   - c_k -syms-> c_k+1 and c_k -complement(syms)-> E for k < max-min;
//   - c_max-min -alphabet-> E.
//
// The convergence edge consumes the symbol that ends the run, so the input
// must continue past the last repetition. Range(n, n) is Exactly(n).
//
// Errors (sticky): ErrInvalidArgument if min < 0 or max < min.
func (s State[T]) Range(min, max int, syms ...T) State[T] {
	if s.failed() {
		return s
	}
	if err := validateRange(min, max); err != nil {
		s.b.fail(err)
		return s
	}
	if err := s.b.validateSymbols(MethodRange, syms); err != nil {
		s.b.fail(err)
		return s
	}
	cur := s.Exactly(min, syms...)
	if max == min {
		return cur
	}

	end := s.b.graph.AddVertex(payloadRangeEnd)
	rest := s.b.complement(syms)
	for k := 0; k < max-min; k++ {
		next := cur.ExactlyOne(syms...)
		s.b.link(cur.at, end, rest)
		cur = next
	}
	s.b.link(cur.at, end, s.b.alphabet.Values())

	return State[T]{b: s.b, at: end}
}

// Not consumes one symbol outside syms.
func (s State[T]) Not(syms ...T) State[T] {
	if s.failed() {
		return s
	}
	if err := s.b.validateSymbols(MethodNot, syms); err != nil {
		s.b.fail(err)
		return s
	}

	return s.ExactlyOne(s.b.complement(syms)...)
}

// Accept marks the cursor vertex as accepting.
func (s State[T]) Accept() State[T] {
	if s.failed() {
		return s
	}
	s.b.accepted[s.at] = true

	return s
}

// InvertAll replaces the accepting set with its complement over every
// vertex currently in the graph.
func (s State[T]) InvertAll() State[T] {
	if s.failed() {
		return s
	}
	inverted := make(map[core.VertexID]bool)
	for _, v := range s.b.graph.Vertices() {
		if !s.b.accepted[v] {
			inverted[v] = true
		}
	}
	s.b.accepted = inverted

	return s
}

// Split runs each branch in order and joins them on a fresh convergence
// vertex through wildcard edges. Branches with no symbols are skipped.
//
// Errors (sticky): ErrForeignState if a body returns another Builder's State.
func (s State[T]) Split(branches ...Branch[T]) State[T] {
	if s.failed() {
		return s
	}
	end := s.b.graph.AddVertex(payloadSplitEnd)
	for i, br := range branches {
		if len(br.Symbols) == 0 {
			continue
		}
		arm := s.ExactlyOne(br.Symbols...)
		if br.Body != nil {
			arm = br.Body(arm)
		}
		if arm.b != s.b {
			s.b.fail(wrapf(MethodSplit, ErrForeignState, "branch %d", i))
		}
		if s.failed() {
			return s
		}
		s.b.link(arm.at, end, nil)
	}

	return State[T]{b: s.b, at: end}
}

// LoopOn runs body when the next symbol is in syms and exits directly
// otherwise: Split(syms → body, complement(syms) → exit). The body runs at
// most once; it is not repeated.
func (s State[T]) LoopOn(syms []T, body func(State[T]) State[T]) State[T] {
	if s.failed() {
		return s
	}
	if err := s.b.validateSymbols(MethodLoopOn, syms); err != nil {
		s.b.fail(err)
		return s
	}

	return s.Split(
		Branch[T]{Symbols: syms, Body: body},
		Branch[T]{Symbols: s.b.complement(syms)},
	)
}

// DontLoopOn is LoopOn over the complement of syms.
func (s State[T]) DontLoopOn(syms []T, body func(State[T]) State[T]) State[T] {
	if s.failed() {
		return s
	}
	if err := s.b.validateSymbols(MethodDontLoopOn, syms); err != nil {
		s.b.fail(err)
		return s
	}

	return s.LoopOn(s.b.complement(syms), body)
}

// String renders the cursor for debugging, e.g. "State(3: after [a])".
func (s State[T]) String() string {
	p, _ := s.b.graph.Payload(s.at)

	return fmt.Sprintf("State(%d: %s)", s.at, p)
}
