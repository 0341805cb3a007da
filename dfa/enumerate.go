package dfa

import (
	"iter"

	"github.com/katalvlaran/lvlath-automata/bfs"
	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/words"
)

// Words returns a restartable sequence over WordList. Each iteration
// recomputes the full list.
func (a *Automaton[S, T]) Words() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, w := range a.WordList() {
			if !yield(w) {
				return
			}
		}
	}
}

// WordList enumerates accepted words spelled by shortest paths.
//
// Paths considered:
//   - the shortest path from start to every reachable accepting vertex;
//   - for every reachable vertex m that is neither start nor accepting, the
//     shortest path start→m followed by the shortest path m→f for every
//     accepting f reachable from m.
//
// Each path expands by Cartesian product of its edge labels, a wildcard edge
// standing for the whole alphabet. Results are deduplicated and kept in
// discovery order. An empty accepting set yields no words.
//
// Complexity: O(V · (V + E)) searches plus the size of the output, which is
// unbounded in the alphabet size and path length.
func (a *Automaton[S, T]) WordList() [][]T {
	var out words.Collector[T]
	if len(a.accepted) == 0 {
		return out.Words()
	}

	fromStart, err := bfs.BFS(a.graph, a.start)
	if err != nil {
		return out.Words()
	}
	accepted := a.Accepted()

	for _, f := range accepted {
		if path, err := fromStart.PathTo(f); err == nil {
			out.AddAll(words.Product(a.labels(path)))
		}
	}

	for _, m := range fromStart.Order {
		if m == a.start || a.accepted[m] {
			continue
		}
		head, _ := fromStart.PathTo(m)
		fromMid, err := bfs.BFS(a.graph, m)
		if err != nil {
			continue
		}
		for _, f := range accepted {
			tail, err := fromMid.PathTo(f)
			if err != nil {
				continue
			}
			full := append(append([]core.EdgeID(nil), head...), tail...)
			out.AddAll(words.Product(a.labels(full)))
		}
	}

	return out.Words()
}

// labels maps a path to the symbol choices of each edge.
func (a *Automaton[S, T]) labels(path []core.EdgeID) [][]T {
	sets := make([][]T, len(path))
	for i, eid := range path {
		e, _ := a.graph.Edge(eid)
		if e.IsWildcard() {
			sets[i] = a.alphabet.Values()
		} else {
			sets[i] = e.Label.Values()
		}
	}

	return sets
}
