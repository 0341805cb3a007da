// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in count deltas for vertex/edge lifecycle.
//   - Validate cascade removal and storage-order guarantees.
//   - Check Clone/Compact independence.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-automata/core"
)

// newChain builds A→B→C with labels a, b on the two edges.
func newChain(t *testing.T) (*core.Graph[string, rune], []core.VertexID, []core.EdgeID) {
	t.Helper()
	g := core.NewGraph[string, rune]()
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	ab, err := g.AddEdge(a, b)
	require.NoError(t, err)
	require.NoError(t, g.SetLabel(ab, 'a'))
	bc, err := g.AddEdge(b, c)
	require.NoError(t, err)
	require.NoError(t, g.SetLabel(bc, 'b'))

	return g, []core.VertexID{a, b, c}, []core.EdgeID{ab, bc}
}

// TestGraph_AddVertexAddEdgeCounts VERIFIES each insertion grows its catalog by exactly one.
func TestGraph_AddVertexAddEdgeCounts(t *testing.T) {
	g := core.NewGraph[string, rune]()
	for i := 0; i < 5; i++ {
		before := g.VertexCount()
		g.AddVertex("v")
		assert.Equal(t, before+1, g.VertexCount())
	}

	vs := g.Vertices()
	for i := 0; i < 4; i++ {
		before := g.EdgeCount()
		_, err := g.AddEdge(vs[i], vs[i+1])
		require.NoError(t, err)
		assert.Equal(t, before+1, g.EdgeCount())
	}

	// Parallel edges and self-loops are legal.
	_, err := g.AddEdge(vs[0], vs[1])
	require.NoError(t, err)
	_, err = g.AddEdge(vs[2], vs[2])
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
}

// TestGraph_AddEdgeMissingVertex VERIFIES endpoints must exist.
func TestGraph_AddEdgeMissingVertex(t *testing.T) {
	g := core.NewGraph[string, rune]()
	v := g.AddVertex("v")

	_, err := g.AddEdge(v, 42)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge(-1, v)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestGraph_EdgeLabels VERIFIES the default wildcard label and SetLabel/ClearLabel.
func TestGraph_EdgeLabels(t *testing.T) {
	g := core.NewGraph[string, rune]()
	a, b := g.AddVertex("A"), g.AddVertex("B")
	e, err := g.AddEdge(a, b)
	require.NoError(t, err)

	view, err := g.Edge(e)
	require.NoError(t, err)
	assert.True(t, view.IsWildcard())
	assert.True(t, view.Matches('z'))
	assert.False(t, view.IsSelfLoop())

	require.NoError(t, g.SetLabel(e, 'x', 'y', 'x'))
	view, _ = g.Edge(e)
	assert.Equal(t, []rune{'x', 'y'}, view.Label.Values())
	assert.True(t, view.Matches('y'))
	assert.False(t, view.Matches('z'))

	require.NoError(t, g.ClearLabel(e))
	view, _ = g.Edge(e)
	assert.True(t, view.IsWildcard())

	require.ErrorIs(t, g.SetLabel(99, 'a'), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.ClearLabel(99), core.ErrEdgeNotFound)
	_, err = g.Edge(99)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_DegreesAndOrder VERIFIES storage order of outbound edges and degree counts.
func TestGraph_DegreesAndOrder(t *testing.T) {
	g := core.NewGraph[string, rune]()
	a, b, c := g.AddVertex("A"), g.AddVertex("B"), g.AddVertex("C")
	e1, _ := g.AddEdge(a, c)
	e2, _ := g.AddEdge(a, b)
	e3, _ := g.AddEdge(a, a)

	out, err := g.Outbound(a)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{e1, e2, e3}, out)
	assert.Equal(t, 3, g.OutDegree(a))
	assert.Equal(t, 1, g.InDegree(a)) // self-loop
	assert.Equal(t, 1, g.InDegree(c))
	assert.Equal(t, 0, g.OutDegree(c))
	assert.Equal(t, 0, g.OutDegree(77))

	in, err := g.Inbound(b)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{e2}, in)

	views, err := g.OutboundEdges(a)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.True(t, views[2].IsSelfLoop())

	_, err = g.Outbound(77)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_RemoveEdge VERIFIES removal unlinks both endpoint lists.
func TestGraph_RemoveEdge(t *testing.T) {
	g, vs, es := newChain(t)
	require.NoError(t, g.RemoveEdge(es[0]))
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge(es[0]))
	assert.Equal(t, 0, g.OutDegree(vs[0]))
	assert.Equal(t, 0, g.InDegree(vs[1]))
	require.ErrorIs(t, g.RemoveEdge(es[0]), core.ErrEdgeNotFound)
}

// TestGraph_RemoveVerticesWhere VERIFIES cascade removal and the returned count.
func TestGraph_RemoveVerticesWhere(t *testing.T) {
	g, vs, _ := newChain(t)
	_, err := g.AddEdge(vs[1], vs[1])
	require.NoError(t, err)

	n := g.RemoveVerticesWhere(func(_ core.VertexID, payload string) bool { return payload == "B" })
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex(vs[1]))
	assert.Equal(t, []core.VertexID{vs[0], vs[2]}, g.Vertices())

	// Handles are not reused.
	d := g.AddVertex("D")
	assert.NotEqual(t, vs[1], d)
}

// TestGraph_RemoveAll VERIFIES RemoveVerticesWhere(always-true) empties both catalogs.
func TestGraph_RemoveAll(t *testing.T) {
	g, _, _ := newChain(t)
	n := g.RemoveVerticesWhere(func(core.VertexID, string) bool { return true })
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
}

// TestGraph_Payload VERIFIES payload lookups.
func TestGraph_Payload(t *testing.T) {
	g, vs, _ := newChain(t)
	p, err := g.Payload(vs[2])
	require.NoError(t, err)
	assert.Equal(t, "C", p)

	v, err := g.Vertex(vs[0])
	require.NoError(t, err)
	assert.Equal(t, "A", v.Payload)

	_, err = g.Payload(100)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_CloneIndependent VERIFIES Clone keeps handles and shares nothing.
func TestGraph_CloneIndependent(t *testing.T) {
	g, vs, es := newChain(t)
	c := g.Clone()

	require.Equal(t, g.VertexCount(), c.VertexCount())
	require.Equal(t, g.EdgeCount(), c.EdgeCount())
	orig, _ := g.Edge(es[0])
	cp, _ := c.Edge(es[0])
	assert.Equal(t, orig.From, cp.From)
	assert.Equal(t, orig.To, cp.To)
	assert.True(t, orig.Label.Equal(cp.Label))

	require.NoError(t, c.SetLabel(es[0], 'q'))
	c.AddVertex("X")
	c.RemoveVerticesWhere(func(v core.VertexID, _ string) bool { return v == vs[2] })

	orig, _ = g.Edge(es[0])
	assert.Equal(t, []rune{'a'}, orig.Label.Values())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
}

// TestGraph_Compact VERIFIES dense renumbering and preserved outbound order.
func TestGraph_Compact(t *testing.T) {
	g := core.NewGraph[string, rune]()
	dead := g.AddVertex("dead")
	a, b := g.AddVertex("A"), g.AddVertex("B")
	_, _ = g.AddEdge(dead, a)
	e1, _ := g.AddEdge(a, b)
	_ = g.SetLabel(e1, 'x')
	_, _ = g.AddEdge(a, a)
	g.RemoveVerticesWhere(func(v core.VertexID, _ string) bool { return v == dead })

	c, remap := g.Compact()
	require.Equal(t, 2, c.VertexCount())
	require.Equal(t, 2, c.EdgeCount())
	assert.Equal(t, core.VertexID(0), remap[a])
	assert.Equal(t, core.VertexID(1), remap[b])

	out, err := c.OutboundEdges(remap[a])
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, remap[b], out[0].To)
	assert.Equal(t, []rune{'x'}, out[0].Label.Values())
	assert.True(t, out[1].IsSelfLoop())
	assert.True(t, out[1].IsWildcard())
}

// TestGraph_Stats VERIFIES the diagnostic snapshot.
func TestGraph_Stats(t *testing.T) {
	g, vs, _ := newChain(t)
	_, _ = g.AddEdge(vs[2], vs[2])

	s := g.Stats()
	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 3, s.EdgeCount)
	assert.Equal(t, 1, s.SelfLoopCount)
	assert.Equal(t, 1, s.WildcardCount)
}
