// Package converters provides two-way adapters between dfa.Automaton and
// YAML documents (gopkg.in/yaml.v3).
//
// Use converters to export an automaton for inspection or storage and to
// load it back:
//
//	start: 0
//	alphabet: [a, b]
//	vertices:
//	  - {id: 0, payload: start}
//	  - {id: 1, payload: after [a], accepting: true}
//	edges:
//	  - {id: 0, from: 0, to: 1, labels: [a]}
//
// An edge without labels and with wildcard: true matches any symbol. An edge
// with neither is a labelled edge that matches nothing.
package converters
