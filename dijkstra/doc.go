// Package dijkstra provides Dijkstra's shortest-path algorithm over core.Graph
// with non-negative costs supplied by a per-edge weight function.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - ShortestPath answers a single from→to query and returns the edge handles on the path.
//
// Uniform weight:
//
//	ShortestPath with a nil WeightFunc (and no options) delegates to
//	bfs.ShortestPath, so "fewest edges" queries never pay for a heap.
//
// Key features:
//
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - Ties are broken in favour of the first edge in storage order.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: source or target is not a live vertex.
//   - ErrNegativeWeight: the weight function produced a negative cost.
//   - ErrNoPath:         target unreachable.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised (via panic) by the option constructors.
//
// API reference:
//
//	func Dijkstra[S any, T comparable](g *core.Graph[S, T], source core.VertexID,
//	    weight WeightFunc[T], opts ...Option) (*Result, error)
//	func ShortestPath[S any, T comparable](g *core.Graph[S, T], from, to core.VertexID,
//	    weight WeightFunc[T], opts ...Option) ([]core.EdgeID, int64, error)
package dijkstra
