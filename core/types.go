// Package core defines the central Graph, Vertex, and Edge types.
//
// This file declares the handle types, the Vertex/Edge value views, the
// arena slots, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import (
	"errors"

	"github.com/katalvlaran/lvlath-automata/symbols"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// VertexID is a stable handle to a vertex inside one Graph.
type VertexID int

// EdgeID is a stable handle to an edge inside one Graph.
type EdgeID int

// NoVertex is the handle returned where no vertex applies.
const NoVertex VertexID = -1

// Vertex is a read-only view of a vertex.
type Vertex[S any] struct {
	// ID is the handle of this vertex.
	ID VertexID

	// Payload is the caller-supplied value attached at AddVertex.
	Payload S
}

// Edge is a read-only view of an edge.
//
// Label is nil for a wildcard edge. A non-nil Label is owned by the graph
// and must not be mutated by the caller; use SetLabel instead.
type Edge[T comparable] struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Label is the set of accepted symbols, or nil for "any symbol".
	Label *symbols.Set[T]
}

// IsSelfLoop reports whether the edge starts and ends on the same vertex.
func (e Edge[T]) IsSelfLoop() bool { return e.From == e.To }

// IsWildcard reports whether the edge has no label set.
func (e Edge[T]) IsWildcard() bool { return e.Label == nil }

// Matches reports whether the edge accepts sym: wildcard edges accept
// everything, labelled edges accept their members.
func (e Edge[T]) Matches(sym T) bool {
	return e.Label == nil || e.Label.Contains(sym)
}

// vertexSlot is the arena record behind a VertexID.
type vertexSlot[S any] struct {
	payload S
	alive   bool
	out     []EdgeID // outbound edges in storage order
	in      []EdgeID // inbound edges in storage order
}

// edgeSlot is the arena record behind an EdgeID.
type edgeSlot[T comparable] struct {
	from  VertexID
	to    VertexID
	label *symbols.Set[T]
	alive bool
}

// Graph is the in-memory directed multigraph.
//
// S is the vertex payload type, T the edge symbol type.
// vertices and edges are append-only arenas; removal flips alive.
type Graph[S any, T comparable] struct {
	vertices []vertexSlot[S]
	edges    []edgeSlot[T]

	vertexCount int // live vertices
	edgeCount   int // live edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[S any, T comparable]() *Graph[S, T] {
	return &Graph[S, T]{}
}
