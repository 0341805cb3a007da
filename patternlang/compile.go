package patternlang

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-automata/builder"
	"github.com/katalvlaran/lvlath-automata/dfa"
)

// ErrSymbolOutsideAlphabet is returned when a class names a rune that the
// alphabet passed to Compile does not contain.
var ErrSymbolOutsideAlphabet = builder.ErrSymbolOutsideAlphabet

// Compile parses src, runs it over alphabet, and returns the minimized automaton.
func Compile(src, alphabet string) (*dfa.Automaton[string, rune], error) {
	b, err := Build(src, alphabet)
	if err != nil {
		return nil, err
	}
	a, err := b.GenerateParser()
	if err != nil {
		return nil, errors.Wrap(err, "patternlang: compile")
	}

	return a, nil
}

// Build parses src and runs it on a fresh builder over alphabet without
// compiling, so callers can inspect the working graph.
func Build(src, alphabet string) (*builder.Builder[rune], error) {
	prog, err := Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "patternlang: parse")
	}
	b := builder.New([]rune(alphabet), builder.WithSymbolPrinter(func(r rune) string { return string(r) }))
	if _, err := run(prog.Statements, b.Start()); err != nil {
		return nil, err
	}

	return b, nil
}

// run applies stmts in order starting from s.
func run(stmts []*Statement, s builder.State[rune]) (builder.State[rune], error) {
	var err error
	for _, st := range stmts {
		if s, err = apply(st, s); err != nil {
			return s, err
		}
		if err := s.Builder().Err(); err != nil {
			return s, errors.Wrapf(err, "patternlang: %s", st.Pos)
		}
	}

	return s, nil
}

// apply runs one statement.
func apply(st *Statement, s builder.State[rune]) (builder.State[rune], error) {
	switch {
	case st.One != nil:
		return withClass(st.One, s, func(rs []rune) builder.State[rune] { return s.ExactlyOne(rs...) })
	case st.Exactly != nil:
		return withClass(st.Exactly.Class, s, func(rs []rune) builder.State[rune] { return s.Exactly(st.Exactly.N, rs...) })
	case st.AtLeast != nil:
		return withClass(st.AtLeast.Class, s, func(rs []rune) builder.State[rune] { return s.AtLeast(st.AtLeast.N, rs...) })
	case st.ZeroOrMore != nil:
		return withClass(st.ZeroOrMore, s, func(rs []rune) builder.State[rune] { return s.ZeroOrMore(rs...) })
	case st.OneOrMore != nil:
		return withClass(st.OneOrMore, s, func(rs []rune) builder.State[rune] { return s.OneOrMore(rs...) })
	case st.Range != nil:
		return withClass(st.Range.Class, s, func(rs []rune) builder.State[rune] {
			return s.Range(st.Range.Min, st.Range.Max, rs...)
		})
	case st.Not != nil:
		return withClass(st.Not, s, func(rs []rune) builder.State[rune] { return s.Not(rs...) })
	case st.Accept:
		return s.Accept(), nil
	case st.Invert:
		return s.InvertAll(), nil
	case st.Split != nil:
		return split(st.Split, s)
	case st.Loop != nil:
		return loop(st.Loop, s, false)
	case st.DontLoop != nil:
		return loop(st.DontLoop, s, true)
	}

	return s, errors.Errorf("patternlang: %s: empty statement", st.Pos)
}

// withClass decodes c and, on success, applies f.
func withClass(c *Class, s builder.State[rune], f func([]rune) builder.State[rune]) (builder.State[rune], error) {
	rs, err := c.Runes()
	if err != nil {
		return s, err
	}

	return f(rs), nil
}

// split decodes every arm before building so class errors stop the statement.
func split(sp *SplitStmt, s builder.State[rune]) (builder.State[rune], error) {
	branches := make([]builder.Branch[rune], 0, len(sp.Branches))
	var bodyErr error
	for _, arm := range sp.Branches {
		rs, err := arm.Class.Runes()
		if err != nil {
			return s, err
		}
		branches = append(branches, builder.Branch[rune]{
			Symbols: rs,
			Body:    bodyFunc(arm.Body, &bodyErr),
		})
	}
	out := s.Split(branches...)

	return out, bodyErr
}

func loop(lp *LoopStmt, s builder.State[rune], invert bool) (builder.State[rune], error) {
	rs, err := lp.Class.Runes()
	if err != nil {
		return s, err
	}
	var bodyErr error
	body := bodyFunc(lp.Body, &bodyErr)
	if invert {
		return s.DontLoopOn(rs, body), bodyErr
	}

	return s.LoopOn(rs, body), bodyErr
}

// bodyFunc adapts a nested program to a builder body, keeping the first
// decoding error in *errp.
func bodyFunc(stmts []*Statement, errp *error) func(builder.State[rune]) builder.State[rune] {
	if len(stmts) == 0 {
		return nil
	}

	return func(s builder.State[rune]) builder.State[rune] {
		out, err := run(stmts, s)
		if err != nil && *errp == nil {
			*errp = err
		}

		return out
	}
}
