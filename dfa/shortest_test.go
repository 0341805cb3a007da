package dfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlath-automata/dfa"
	"github.com/katalvlaran/lvlath-automata/dijkstra"
)

// CheapestWordSuite exercises CheapestWord on a two-route automaton.
type CheapestWordSuite struct {
	suite.Suite
	m *dfa.Automaton[string, rune]
}

// SetupTest builds two routes to acceptance: "z" directly, or [ab] then any symbol.
func (s *CheapestWordSuite) SetupTest() {
	s.m = machine(s.T(), 3, []arc{{0, 2, "z"}, {0, 1, "ab"}, {1, 2, wild}}, []int{2}, "abz")
}

// TestUniform verifies that a nil cost picks the fewest symbols.
func (s *CheapestWordSuite) TestUniform() {
	w, c, err := s.m.CheapestWord(nil)
	require.NoError(s.T(), err)
	s.Equal("z", string(w))
	s.Equal(int64(1), c)
}

// TestPriced verifies the cheapest symbol is chosen per edge, wildcards included.
func (s *CheapestWordSuite) TestPriced() {
	prices := map[rune]int64{'a': 3, 'b': 1, 'z': 10}
	w, c, err := s.m.CheapestWord(func(r rune) int64 { return prices[r] })
	require.NoError(s.T(), err)
	s.Equal("bb", string(w))
	s.Equal(int64(2), c)
	s.Equal(dfa.Accept, s.m.Parse(w))
}

// TestNegativeCost ensures negative prices surface as ErrNegativeWeight.
func (s *CheapestWordSuite) TestNegativeCost() {
	_, _, err := s.m.CheapestWord(func(rune) int64 { return -1 })
	require.ErrorIs(s.T(), err, dijkstra.ErrNegativeWeight)
}

func TestCheapestWordSuite(t *testing.T) {
	suite.Run(t, new(CheapestWordSuite))
}

func TestCheapestWord_AcceptingStart(t *testing.T) {
	m := machine(t, 2, []arc{{0, 1, "a"}}, []int{0, 1}, "a")
	w, c, err := m.CheapestWord(nil)
	require.NoError(t, err)
	require.Empty(t, w)
	require.Zero(t, c)
}

func TestCheapestWord_EmptyLanguage(t *testing.T) {
	// The only route is an edge that matches nothing.
	m := machine(t, 2, []arc{{0, 1, ""}}, []int{1}, "a")
	_, _, err := m.CheapestWord(nil)
	require.ErrorIs(t, err, dfa.ErrEmptyLanguage)

	m = machine(t, 2, []arc{{0, 1, "a"}}, nil, "a")
	_, _, err = m.CheapestWord(nil)
	require.ErrorIs(t, err, dfa.ErrEmptyLanguage)
}
