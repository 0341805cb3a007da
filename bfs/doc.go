// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-edge distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex,
//     following outbound edges only.
//   - Returns a BFSResult containing:
//   - Order:      visit sequence
//   - Depth:      vertex → distance (edges) from start
//   - Parent:     vertex → predecessor vertex in the BFS tree
//   - ParentEdge: vertex → edge used to reach it
//   - Hooks: OnVisit (may abort with an error).
//   - WithFilterEdge skips individual edges; WithMaxDepth bounds the search.
//
// Why
//
//   - Shortest paths under uniform edge weight in O(V + E).
//   - Automaton word enumeration uses ShortestPath to pick one representative
//     path per (start, accepting) vertex pair.
//
// Determinism
//
//	core.Graph.Outbound returns edges in storage order and BFS enqueues
//	targets in that order, so the visit sequence and the chosen parent edges
//	are fully reproducible. Parallel edges: the first one in storage order wins.
//
// Self-loops
//
//	A self-loop never discovers a new vertex and therefore never appears on a
//	shortest path.
package bfs
