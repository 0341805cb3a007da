// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks, depth limiting, and edge filtering.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvlath-automata/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v core.VertexID) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v core.VertexID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each outbound edge before recursing.
	// Return true to traverse it, false to skip it.
	FilterEdge func(from, to core.VertexID, e core.EdgeID) bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No edge filtering
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v core.VertexID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge returns an Option that filters outbound edges.
func WithFilterEdge(fn func(from, to core.VertexID, e core.EdgeID) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []core.VertexID

	// Depth maps each vertex to its distance (#edges) from the start along the DFS tree.
	Depth map[core.VertexID]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// The start vertex does not appear in this map.
	Parent map[core.VertexID]core.VertexID

	// Visited flags which vertices were reached during the traversal.
	Visited map[core.VertexID]bool
}
