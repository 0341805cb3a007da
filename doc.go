// Package automata is the root of lvlath-automata: deterministic finite
// automata stored on a generic directed graph whose edges carry symbol sets.
//
// Packages:
//
//	symbols      insertion-ordered symbol sets (alphabets and edge labels)
//	core         arena graph with integer handles and wildcard edges
//	bfs, dfs     traversals used for reachability, cycles and word paths
//	dijkstra     weighted shortest paths, used for cheapest accepted words
//	words        cartesian products and trie-based word deduplication
//	dfa          the automaton: Parse, Minimize, Regex, Words, CheapestWord
//	builder      fluent combinators that assemble an automaton
//	patternlang  a text syntax compiled through builder
//	converters   YAML import and export
//
// Quick start:
//
//	b := builder.New([]rune("01ab"))
//	b.Start().Exactly(2, '0', '1').OneOrMore('a', 'b').Accept()
//	parser, _ := b.GenerateParser()
//	parser.Parse([]rune("10ab")) // Accept
//
// The cmd/dfatool binary loads pattern definitions from YAML and reports
// regexes, sample words and verdicts.
package automata
