package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dfa"
)

// wild marks an edge without a label.
const wild = "*"

// arc is a test edge; label lists the accepted runes, or wild.
type arc struct {
	from, to int
	label    string
}

// machine builds an automaton over n vertices named q0..qn-1, start q0,
// with the given edges and accepting vertices, over alphabet.
func machine(t *testing.T, n int, arcs []arc, accepting []int, alphabet string) *dfa.Automaton[string, rune] {
	t.Helper()
	g := core.NewGraph[string, rune]()
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex("q" + string(rune('0'+i)))
	}
	for _, a := range arcs {
		eid, err := g.AddEdge(ids[a.from], ids[a.to])
		require.NoError(t, err)
		if a.label != wild {
			require.NoError(t, g.SetLabel(eid, []rune(a.label)...))
		}
	}
	m, err := dfa.New(g, ids[0], dfa.WithAlphabet([]rune(alphabet)...))
	require.NoError(t, err)
	for _, v := range accepting {
		require.NoError(t, m.SetAccepted(ids[v], true))
	}

	return m
}

// wordSet renders words as strings for order-insensitive comparison.
func wordSet(ws [][]rune) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}

	return out
}

func printRune(r rune) string { return string(r) }
