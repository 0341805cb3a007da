package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/core"
)

// ExampleGraph demonstrates basic creation, labelling, and cascade removal.
func ExampleGraph() {
	// 1) Create a graph with string payloads and rune labels:
	g := core.NewGraph[string, rune]()

	// 2) Add vertices and edges; new edges are wildcards until labelled:
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	ab, _ := g.AddEdge(a, b)
	_ = g.SetLabel(ab, 'x', 'y')
	_, _ = g.AddEdge(b, c)

	// 3) Inspect edges:
	for _, e := range g.Edges() {
		if e.IsWildcard() {
			fmt.Printf("%d->%d any\n", e.From, e.To)
			continue
		}
		fmt.Printf("%d->%d %q\n", e.From, e.To, string(e.Label.Values()))
	}

	// 4) Remove a vertex and its edges:
	removed := g.RemoveVerticesWhere(func(v core.VertexID, _ string) bool { return v == b })
	fmt.Println("removed:", removed, "vertices:", g.VertexCount(), "edges:", g.EdgeCount())

	// Output:
	// 0->1 "xy"
	// 1->2 any
	// removed: 1 vertices: 2 edges: 0
}
