// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph whose edge costs come from a caller-supplied weight function.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Weights are evaluated lazily per relaxation; a negative weight aborts with ErrNegativeWeight.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Only outbound edges are relaxed (the graph is directed).
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-automata/bfs"
	"github.com/katalvlaran/lvlath-automata/core"
)

// Result holds the distances and predecessor edges of one Dijkstra run.
//
//   - Dist: vertex → minimum distance (math.MaxInt64 if unreachable).
//   - Prev: vertex → edge on the shortest path into it (absent for source/unreachable).
type Result struct {
	Source core.VertexID
	Dist   map[core.VertexID]int64
	Prev   map[core.VertexID]core.EdgeID
}

// Dijkstra computes shortest distances from source to all reachable vertices of g
// under weight.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrVertexNotFound).
//  3. weight must be non-negative on every relaxed edge (ErrNegativeWeight).
//
// A nil weight behaves like Uniform.
func Dijkstra[S any, T comparable](g *core.Graph[S, T], source core.VertexID, weight WeightFunc[T], opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d", ErrVertexNotFound, source)
	}
	if weight == nil {
		weight = Uniform[T]
	}

	V := g.VertexCount()
	r := &runner[S, T]{
		g:       g,
		weight:  weight,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make(map[core.VertexID]int64, V),
			Prev:   make(map[core.VertexID]core.EdgeID, V),
		},
		visited: make(map[core.VertexID]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// ShortestPath returns the minimum-cost path from → to as edge handles, plus its cost.
//
// A nil weight selects uniform cost and is answered by bfs.ShortestPath
// (fewest edges, first edge in storage order on ties); the returned cost is then
// the number of edges.
//
// Errors:
//   - ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight.
//   - ErrNoPath when to is unreachable.
func ShortestPath[S any, T comparable](g *core.Graph[S, T], from, to core.VertexID, weight WeightFunc[T], opts ...Option) ([]core.EdgeID, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return nil, 0, fmt.Errorf("%w: from=%d to=%d", ErrVertexNotFound, from, to)
	}
	if weight == nil && len(opts) == 0 {
		path, err := bfs.ShortestPath(g, from, to)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrNoPath, err)
		}

		return path, int64(len(path)), nil
	}

	res, err := Dijkstra(g, from, weight, opts...)
	if err != nil {
		return nil, 0, err
	}
	if res.Dist[to] == math.MaxInt64 {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	// Walk predecessor edges back from the target.
	var path []core.EdgeID
	for cur := to; cur != from; {
		eid := res.Prev[cur]
		path = append(path, eid)
		e, _ := g.Edge(eid)
		cur = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, res.Dist[to], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S any, T comparable] struct {
	g       *core.Graph[S, T]      // The input graph; read-only within Dijkstra.
	weight  WeightFunc[T]          // Edge cost function.
	options Options                // Configuration options (thresholds).
	res     *Result                // Distances and predecessor edges.
	visited map[core.VertexID]bool // Tracks if a vertex's distance is finalized.
	pq      nodePQ                 // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for all vertices, zero for the source, and seeds the heap.
func (r *runner[S, T]) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = math.MaxInt64
	}
	r.res.Dist[r.res.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.res.Source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner[S, T]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale heap entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and attempts to improve distances to its targets.
// If a shorter path to v is found (newDist < dist[v]), we update dist[v], prev[v], and push a heap entry.
func (r *runner[S, T]) relax(u core.VertexID) error {
	edges, err := r.g.OutboundEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get outbound edges of %d: %w", u, err)
	}
	for _, e := range edges {
		w := r.weight(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.res.Dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict “<” keeps the first edge in storage order on ties.
		if newDist >= r.res.Dist[e.To] {
			continue
		}
		r.res.Dist[e.To] = newDist
		r.res.Prev[e.To] = e.ID
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   core.VertexID
	dist int64
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// When we find a shorter distance to an existing vertex v, we push a new *nodeItem.
// The outdated entry remains but is ignored when popped (checked via visited[v]).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
