package dfa

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dijkstra"
)

// impassable is the weight given to edges that match no symbol.
const impassable = math.MaxInt64

// CheapestWord returns an accepted word of minimal total cost, where cost
// prices each symbol (nil prices every symbol at 1, giving a shortest word).
// Each edge costs its cheapest member; a wildcard edge its cheapest alphabet
// symbol. Ties between accepting vertices go to the earliest in storage order.
//
// Errors:
//   - ErrEmptyLanguage if no accepting vertex is reachable.
//   - dijkstra.ErrNegativeWeight if cost returns a negative value.
func (a *Automaton[S, T]) CheapestWord(cost func(T) int64) ([]T, int64, error) {
	if cost == nil {
		cost = func(T) int64 { return 1 }
	}
	weight := func(e core.Edge[T]) int64 {
		_, w := a.cheapestSymbol(e, cost)
		return w
	}
	res, err := dijkstra.Dijkstra(a.graph, a.start, weight, dijkstra.WithInfEdgeThreshold(impassable))
	if err != nil {
		return nil, 0, fmt.Errorf("dfa: cheapest word: %w", err)
	}

	best, bestDist := core.NoVertex, int64(math.MaxInt64)
	for _, v := range a.Accepted() {
		if d, ok := res.Dist[v]; ok && d < bestDist {
			best, bestDist = v, d
		}
	}
	if best == core.NoVertex {
		return nil, 0, ErrEmptyLanguage
	}

	var word []T
	for cur := best; cur != a.start; {
		e, _ := a.graph.Edge(res.Prev[cur])
		sym, _ := a.cheapestSymbol(e, cost)
		word = append(word, sym)
		cur = e.From
	}
	for i, j := 0, len(word)-1; i < j; i, j = i+1, j-1 {
		word[i], word[j] = word[j], word[i]
	}

	return word, bestDist, nil
}

// cheapestSymbol picks the lowest-cost symbol e can consume, first in label
// order on ties. Edges that match nothing report impassable.
func (a *Automaton[S, T]) cheapestSymbol(e core.Edge[T], cost func(T) int64) (T, int64) {
	var (
		best T
		bw   = int64(impassable)
	)
	choices := a.alphabet.Values()
	if !e.IsWildcard() {
		choices = e.Label.Values()
	}
	for _, s := range choices {
		if w := cost(s); w < bw {
			best, bw = s, w
		}
	}

	return best, bw
}
