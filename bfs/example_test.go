package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/bfs"
	"github.com/katalvlaran/lvlath-automata/core"
)

// ExampleShortestPath finds the fewest-hop route between two routers.
//
//	R1 → R2 → R3
//	 ↓         ↑
//	R4 ───────→┘
func ExampleShortestPath() {
	g := core.NewGraph[string, struct{}]()
	r := map[string]core.VertexID{}
	for _, name := range []string{"R1", "R2", "R3", "R4"} {
		r[name] = g.AddVertex(name)
	}
	for _, link := range [][2]string{{"R1", "R2"}, {"R2", "R3"}, {"R1", "R4"}, {"R4", "R3"}} {
		_, _ = g.AddEdge(r[link[0]], r[link[1]])
	}

	path, err := bfs.ShortestPath(g, r["R1"], r["R3"])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, eid := range path {
		e, _ := g.Edge(eid)
		from, _ := g.Payload(e.From)
		to, _ := g.Payload(e.To)
		fmt.Printf("%s -> %s\n", from, to)
	}

	// Output:
	// R1 -> R2
	// R2 -> R3
}
