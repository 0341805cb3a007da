// Package dfs implements depth‑first search on core.Graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[S any, T comparable] struct {
	graph *core.Graph[S, T] // underlying graph
	opts  DFSOptions        // traversal options
	res   *DFSResult        // result collector
}

// DFS performs depth‑first search on graph g from start, following outbound
// edges in storage order. Returns DFSResult or the first hook error.
func DFS[S any, T comparable](g *core.Graph[S, T], start core.VertexID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]core.VertexID, 0, n),
		Depth:   make(map[core.VertexID]int, n),
		Parent:  make(map[core.VertexID]core.VertexID, n),
		Visited: make(map[core.VertexID]bool, n),
	}

	walker := &dfsWalker[S, T]{graph: g, opts: dopts, res: res}
	if err := walker.visit(start, 0); err != nil {
		return nil, err
	}

	return res, nil
}

// visit marks v, runs hooks, and recurses into unvisited targets.
func (w *dfsWalker[S, T]) visit(v core.VertexID, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit(%d): %w", v, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges, _ := w.graph.OutboundEdges(v)
		for _, e := range edges {
			if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e.From, e.To, e.ID) {
				continue
			}
			if w.res.Visited[e.To] {
				continue
			}
			w.res.Parent[e.To] = v
			if err := w.visit(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit(%d): %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
