// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, weighted routing, thresholds, and the
// uniform-weight delegation to BFS.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dijkstra"
)

// weighted builds a graph whose vertex payloads are names and whose edges carry
// their cost as a single int label.
func weighted(t *testing.T, edges [][3]interface{}) (*core.Graph[string, int], map[string]core.VertexID) {
	t.Helper()
	g := core.NewGraph[string, int]()
	ids := map[string]core.VertexID{}
	vertex := func(name string) core.VertexID {
		if id, ok := ids[name]; ok {
			return id
		}
		ids[name] = g.AddVertex(name)
		return ids[name]
	}
	for _, e := range edges {
		from, to := vertex(e[0].(string)), vertex(e[1].(string))
		eid, err := g.AddEdge(from, to)
		require.NoError(t, err)
		require.NoError(t, g.SetLabel(eid, e[2].(int)))
	}

	return g, ids
}

// labelCost reads the cost stored as the single label member.
func labelCost(e core.Edge[int]) int64 {
	return int64(e.Label.Values()[0])
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra[string, int](nil, 0, nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := core.NewGraph[string, int]()
	_, err = dijkstra.Dijkstra(g, 5, nil)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(g, 0, 1, nil)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g, ids := weighted(t, [][3]interface{}{{"A", "B", -5}})
	_, err := dijkstra.Dijkstra(g, ids["A"], labelCost)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality.
// ------------------------------------------------------------------------

func TestDijkstra_PrefersCheaperLongerRoute(t *testing.T) {
	// A→B(1), B→C(2), A→C(5): cheapest A→C goes through B.
	g, ids := weighted(t, [][3]interface{}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})

	res, err := dijkstra.Dijkstra(g, ids["A"], labelCost)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist[ids["A"]])
	assert.Equal(t, int64(1), res.Dist[ids["B"]])
	assert.Equal(t, int64(3), res.Dist[ids["C"]])

	path, cost, err := dijkstra.ShortestPath(g, ids["A"], ids["C"], labelCost)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)
	assert.Len(t, path, 2)
}

func TestDijkstra_UniformDelegatesToBFS(t *testing.T) {
	g, ids := weighted(t, [][3]interface{}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})

	path, cost, err := dijkstra.ShortestPath(g, ids["A"], ids["C"], nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cost)
	require.Len(t, path, 1)
	e, _ := g.Edge(path[0])
	assert.Equal(t, ids["C"], e.To)

	// Explicit Uniform goes through the heap but agrees.
	path2, cost2, err := dijkstra.ShortestPath(g, ids["A"], ids["C"], dijkstra.Uniform[int])
	require.NoError(t, err)
	assert.Equal(t, cost, cost2)
	assert.Equal(t, path, path2)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, ids := weighted(t, [][3]interface{}{{"A", "B", 1}, {"C", "A", 1}})

	res, err := dijkstra.Dijkstra(g, ids["A"], labelCost)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), res.Dist[ids["C"]])

	_, _, err = dijkstra.ShortestPath(g, ids["A"], ids["C"], labelCost)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
	_, _, err = dijkstra.ShortestPath(g, ids["A"], ids["C"], nil)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestDijkstra_Thresholds(t *testing.T) {
	g, ids := weighted(t, [][3]interface{}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})

	// Edge A→C (5) becomes a wall; route via B still works.
	_, cost, err := dijkstra.ShortestPath(g, ids["A"], ids["C"], labelCost, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(3), cost)

	// MaxDistance below the cheapest route hides C.
	_, _, err = dijkstra.ShortestPath(g, ids["A"], ids["C"], labelCost, dijkstra.WithMaxDistance(2))
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
}

func TestDijkstra_SelfLoopIgnored(t *testing.T) {
	g, ids := weighted(t, [][3]interface{}{{"A", "A", 0}, {"A", "B", 4}})
	_, cost, err := dijkstra.ShortestPath(g, ids["A"], ids["B"], labelCost)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cost)
}
