// Package dfa provides a graph-backed deterministic finite automaton over a
// core.Graph.
//
// An Automaton is a graph, a start vertex, and a set of accepting vertices.
// Edges carry a label set of symbols or are wildcards that match any symbol.
//
// What:
//
//   - New / SetAccepted / IsAccepted: construction and the accepting set.
//   - Minimize: dead-end and unreachable pruning plus wildcard splicing,
//     repeated to a fixed point. This is not canonical DFA minimization;
//     equivalent states are never merged.
//   - Parse / ParsePath: first matching outbound edge wins, no backtracking.
//   - Regex: expression synthesis for graphs whose only cycles are self-loops.
//   - Words / WordList: accepted words spelled by shortest paths.
//   - CheckDeterministic: optional overlap check on outbound labels.
//
// Determinism:
//
//	Every traversal follows outbound edges in storage order, so verdicts,
//	expressions, and word order are reproducible for a given graph.
//
// Concurrency:
//
//	An Automaton is read-only after construction apart from SetAccepted.
//	Minimize, Parse, Regex, and Words never mutate the receiver and may be
//	called concurrently once no goroutine calls SetAccepted.
package dfa
