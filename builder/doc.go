// Package builder provides a fluent DSL that grows an automaton graph from
// quantified symbol patterns and compiles it into a dfa.Automaton.
//
// The package offers the following key components:
//
//   - Builder: owns the working graph, the accepting set, the closed alphabet,
//     and the sticky error.
//   - State: a cursor vertex plus a pointer back to its Builder. Combinators
//     return new States and mutate the shared graph:
//     – ExactlyOne, Exactly, AtLeast, ZeroOrMore, OneOrMore, Range, Not.
//     – Accept, InvertAll.
//     – Split, LoopOn, DontLoopOn.
//   - Options: WithSymbolPrinter, WithStartPayload.
//
// Guarantees:
//
//   - Combinators never panic and never return errors; the first failure is
//     kept on the Builder (Err) and later combinators become no-ops.
//   - GenerateParser compiles a copy of the graph and minimizes it, so the
//     Builder stays usable after compiling.
//   - Vertex payloads are human-readable descriptions ("after [a b]").
//
// Example:
//
//	b := builder.New([]rune("ab"))
//	b.Start().ExactlyOne('a').ZeroOrMore('b').Accept()
//	parser, err := b.GenerateParser()
package builder
