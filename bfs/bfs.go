// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-edge distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with an optional visit hook, depth limiting, and edge filtering.
package bfs

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/lvlath-automata/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S any, T comparable] struct {
	graph   *core.Graph[S, T]
	opts    BFSOptions
	queue   *linkedlistqueue.Queue
	visited map[core.VertexID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS[S any, T comparable](g *core.Graph[S, T], start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[S, T]{
		graph:   g,
		opts:    o,
		queue:   linkedlistqueue.New(),
		visited: make(map[core.VertexID]bool, n),
		res: &BFSResult{
			Start:      start,
			Order:      make([]core.VertexID, 0, n),
			Depth:      make(map[core.VertexID]int, n),
			Parent:     make(map[core.VertexID]core.VertexID, n),
			ParentEdge: make(map[core.VertexID]core.EdgeID, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.mark(start, 0)
	w.queue.Enqueue(queueItem{id: start, depth: 0})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// ShortestPath returns the fewest-edge path from → to as edge handles.
// from == to yields an empty path.
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound, ErrTargetVertexNotFound.
//   - ErrNoPath when to is unreachable.
func ShortestPath[S any, T comparable](g *core.Graph[S, T], from, to core.VertexID) ([]core.EdgeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(to) {
		return nil, ErrTargetVertexNotFound
	}
	res, err := BFS(g, from)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}

// mark records v as discovered at depth d.
func (w *walker[S, T]) mark(v core.VertexID, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
}

// loop processes the queue until empty or a hook error.
func (w *walker[S, T]) loop() error {
	for !w.queue.Empty() {
		raw, _ := w.queue.Dequeue()
		item := raw.(queueItem)
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[S, T]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks outbound edges in storage order, applies filtering
// and MaxDepth, and enqueues each unseen target.
func (w *walker[S, T]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	// item.id is live: it was either the validated start or the target of a live edge.
	edges, _ := w.graph.OutboundEdges(item.id)
	for _, e := range edges {
		if !w.opts.FilterEdge(e.From, e.To, e.ID) {
			continue
		}
		if w.visited[e.To] {
			continue
		}
		w.mark(e.To, nextDepth)
		w.res.Parent[e.To] = item.id
		w.res.ParentEdge[e.To] = e.ID
		w.queue.Enqueue(queueItem{id: e.To, depth: nextDepth})
	}
}
