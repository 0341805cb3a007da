// Package dfs implements depth‑first search traversal and cycle detection on a
// directed core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     outbound edge before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Depth limiting
//   - Edge filtering
//   - FindCycle: returns one cycle through two or more vertices reachable from
//     a start vertex, using vertex coloring (White, Gray, Black) and back‑edge
//     detection. Self-loops are not cycles for this purpose.
//
// Why:
//   - Expression synthesis over an automaton recurses along edges and only
//     terminates when the only cycles are self-loops; FindCycle is the guard.
//
// Key Types & Constants:
//
//   - White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds hooks, MaxDepth, FilterEdge
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Determinism:
//
//	Outbound edges are followed in storage order, so Order and the reported
//	cycle are reproducible for a given graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) recursion stack and metadata maps.
package dfs
