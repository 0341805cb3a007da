package dfa_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dfa"
)

// ExampleAutomaton wires a two-letter automaton by hand and queries it.
func ExampleAutomaton() {
	g := core.NewGraph[string, rune]()
	s := g.AddVertex("start")
	mid := g.AddVertex("after a")
	end := g.AddVertex("after b")
	e1, _ := g.AddEdge(s, mid)
	_ = g.SetLabel(e1, 'a')
	e2, _ := g.AddEdge(mid, end)
	_ = g.SetLabel(e2, 'b', 'c')

	m, _ := dfa.New(g, s, dfa.WithAlphabet('a', 'b', 'c'))
	_ = m.SetAccepted(end, true)

	re, _ := m.Regex(func(r rune) string { return string(r) })
	fmt.Println(re)
	fmt.Println(m.Parse([]rune("ac")), m.Parse([]rune("ca")))
	for w := range m.Words() {
		fmt.Println(string(w))
	}
	// Output:
	// a[bc]
	// accept reject
	// ab
	// ac
}
