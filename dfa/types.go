package dfa

import (
	"errors"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/symbols"
)

// Sentinel errors for automaton operations.
var (
	// ErrInvalidArgument indicates a vertex outside the automaton's graph
	// or an otherwise unusable argument.
	ErrInvalidArgument = errors.New("dfa: invalid argument")

	// ErrUnsupportedTopology indicates a cycle through two or more vertices,
	// which expression synthesis cannot render.
	ErrUnsupportedTopology = errors.New("dfa: unsupported topology")

	// ErrNondeterministic indicates a vertex whose outbound labels overlap.
	ErrNondeterministic = errors.New("dfa: overlapping outbound labels")

	// ErrEmptyLanguage indicates that no accepting vertex is reachable.
	ErrEmptyLanguage = errors.New("dfa: no accepted word")
)

// Verdict is the outcome of Parse.
type Verdict int

const (
	// Reject means the input is not in the language.
	Reject Verdict = iota
	// Accept means the input is in the language.
	Accept
)

// String returns "accept" or "reject".
func (v Verdict) String() string {
	if v == Accept {
		return "accept"
	}

	return "reject"
}

// Trace is the walk ParsePath took. Vertices starts with the start vertex
// and has one more element than Edges. A rejected walk stops at the vertex
// where no edge matched.
type Trace struct {
	Vertices []core.VertexID
	Edges    []core.EdgeID
}

// Option configures New.
type Option[T comparable] func(*options[T])

type options[T comparable] struct {
	alphabet *symbols.Set[T]
}

// WithAlphabet declares the symbols a wildcard edge stands for during word
// enumeration. Without it wildcard edges contribute no words.
func WithAlphabet[T comparable](syms ...T) Option[T] {
	return func(o *options[T]) {
		o.alphabet = symbols.New(syms...)
	}
}

// WithAlphabetSet is WithAlphabet for an existing set. The set is cloned.
func WithAlphabetSet[T comparable](alphabet *symbols.Set[T]) Option[T] {
	return func(o *options[T]) {
		if alphabet == nil {
			o.alphabet = symbols.New[T]()
			return
		}
		o.alphabet = alphabet.Clone()
	}
}
