package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-automata/dfa"
)

func TestMinimize_PrunesDeadAndUnreachable(t *testing.T) {
	// q2 is a dead end, q3 is unreachable, q4 only feeds the dead end q2.
	m := machine(t, 5, []arc{
		{0, 1, "a"},
		{0, 2, "b"},
		{3, 1, "c"},
		{1, 4, "d"},
		{4, 2, "e"},
	}, []int{1}, "abcde")

	min := m.Minimize()
	require.NotSame(t, m, min)
	assert.Equal(t, 2, min.Graph().VertexCount())
	assert.Equal(t, 1, min.Graph().EdgeCount())
	assert.Equal(t, dfa.Accept, min.Parse([]rune("a")))
	assert.Equal(t, dfa.Reject, min.Parse([]rune("b")))

	// The receiver is untouched.
	assert.Equal(t, 5, m.Graph().VertexCount())
	assert.Equal(t, 5, m.Graph().EdgeCount())
}

func TestMinimize_KeepsStart(t *testing.T) {
	m := machine(t, 1, nil, nil, "a")
	min := m.Minimize()
	assert.Equal(t, 1, min.Graph().VertexCount())
	assert.Equal(t, dfa.Reject, min.Parse(nil))
}

func TestMinimize_SplicesWildcard(t *testing.T) {
	m := machine(t, 4, []arc{{0, 1, "a"}, {1, 2, wild}, {2, 3, "b"}}, []int{3}, "ab")

	min := m.Minimize()
	assert.Equal(t, 3, min.Graph().VertexCount())
	assert.Equal(t, 0, min.Graph().Stats().WildcardCount)
	assert.Equal(t, dfa.Accept, min.Parse([]rune("ab")))
	assert.Equal(t, dfa.Reject, min.Parse([]rune("aab")))
}

func TestMinimize_SpliceCarriesAcceptance(t *testing.T) {
	// q2 is accepting and only reachable through the wildcard edge.
	m := machine(t, 3, []arc{{0, 1, "a"}, {1, 2, wild}}, []int{2}, "ab")

	min := m.Minimize()
	assert.Equal(t, 2, min.Graph().VertexCount())
	assert.Len(t, min.Accepted(), 1)
	assert.Equal(t, dfa.Accept, min.Parse([]rune("a")))
}

func TestMinimize_WildcardSelfLoopTargetIsKept(t *testing.T) {
	m := machine(t, 3, []arc{{0, 1, "a"}, {1, 2, wild}, {2, 2, wild}}, []int{2}, "ab")

	min := m.Minimize()
	assert.Equal(t, 3, min.Graph().VertexCount())
	assert.Equal(t, dfa.Accept, min.Parse([]rune("abab")))
}

func TestMinimize_PreservesWords(t *testing.T) {
	m := machine(t, 7, []arc{
		{0, 1, "a"},
		{0, 2, "b"},
		{1, 1, "a"},
		{1, 3, "bc"},
		{2, 3, "c"},
		{2, 4, "a"},
		{4, 5, "b"},
		{6, 3, "a"},
	}, []int{3, 4}, "abc")

	min := m.Minimize()
	assert.LessOrEqual(t, min.Graph().VertexCount(), m.Graph().VertexCount())
	assert.ElementsMatch(t, wordSet(m.WordList()), wordSet(min.WordList()))
	for _, w := range min.WordList() {
		assert.Equal(t, dfa.Accept, m.Parse(w), string(w))
		assert.Equal(t, dfa.Accept, min.Parse(w), string(w))
	}
}
