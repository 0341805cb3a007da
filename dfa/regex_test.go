package dfa_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-automata/dfa"
)

func TestRegex_Shapes(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		arcs      []arc
		accepting []int
		want      string
	}{
		{"chain", 3, []arc{{0, 1, "a"}, {1, 2, "b"}}, []int{2}, "ab"},
		{"bracket branches", 3, []arc{{0, 1, "a"}, {0, 2, "b"}}, []int{1, 2}, "[ab]"},
		{"label class", 2, []arc{{0, 1, "xyz"}}, []int{1}, "[xyz]"},
		{"self loop", 1, []arc{{0, 0, "a"}}, []int{0}, "a*"},
		{"merged self loops", 2, []arc{{0, 0, "a"}, {0, 0, "b"}, {0, 1, "c"}}, []int{1}, "[ab]*c"},
		{"wildcard loop", 1, []arc{{0, 0, wild}}, []int{0}, ".*"},
		{"wildcard edge", 2, []arc{{0, 1, wild}}, []int{1}, "."},
		{"optional tail", 3, []arc{{0, 1, "a"}, {1, 2, "b"}}, []int{1, 2}, "ab?"},
		{"optional group", 4, []arc{{0, 1, "a"}, {1, 2, "b"}, {2, 3, "c"}}, []int{1, 3}, "a(bc)?"},
		{"alternation", 4, []arc{{0, 1, "a"}, {1, 3, "x"}, {0, 2, "b"}, {2, 3, "y"}}, []int{3}, "(ax|by)"},
		{"escaped literal", 2, []arc{{0, 1, "."}}, []int{1}, `\.`},
		{"escaped class", 2, []arc{{0, 1, ".]"}}, []int{1}, `[.\]]`},
		{"dead branch dropped", 3, []arc{{0, 1, "a"}, {0, 2, "b"}}, []int{1}, "a"},
		{"empty word only", 2, []arc{{0, 1, "a"}}, []int{0}, ""},
		{"unreachable accepting", 3, []arc{{0, 1, "a"}, {2, 1, "b"}}, []int{1}, "a"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := machine(t, tc.n, tc.arcs, tc.accepting, "abcxyz.]")
			got, err := m.Regex(printRune)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRegex_EmptyLanguage(t *testing.T) {
	for name, m := range map[string]*dfa.Automaton[string, rune]{
		"no accepting":      machine(t, 2, []arc{{0, 1, "a"}}, nil, "a"),
		"accepting cut off": machine(t, 2, []arc{{0, 1, ""}}, []int{1}, "a"),
		"accepting behind":  machine(t, 2, []arc{{1, 0, "a"}}, []int{1}, "a"),
	} {
		t.Run(name, func(t *testing.T) {
			re, err := m.Regex(printRune)
			require.ErrorIs(t, err, dfa.ErrEmptyLanguage)
			assert.Empty(t, re)
		})
	}
}

func TestRegex_CycleIsUnsupported(t *testing.T) {
	m := machine(t, 2, []arc{{0, 1, "a"}, {1, 0, "b"}}, []int{1}, "ab")
	_, err := m.Regex(printRune)
	require.ErrorIs(t, err, dfa.ErrUnsupportedTopology)
}

func TestRegex_MatchesWords(t *testing.T) {
	m := machine(t, 6, []arc{
		{0, 1, "a"},
		{0, 2, "b"},
		{1, 1, "a"},
		{1, 3, "bc"},
		{2, 4, "c"},
		{3, 5, "-"},
		{4, 5, "x"},
	}, []int{3, 5}, "abcx-")

	re, err := m.Regex(printRune)
	require.NoError(t, err)
	rx := regexp.MustCompile("^(?:" + re + ")$")

	ws := m.WordList()
	require.NotEmpty(t, ws)
	for _, w := range ws {
		assert.True(t, rx.MatchString(string(w)), "%q should match %s", string(w), re)
	}
	for _, s := range []string{"", "a", "b", "bc", "ab-x"} {
		assert.False(t, rx.MatchString(s), "%q should not match %s", s, re)
		assert.Equal(t, dfa.Reject, m.Parse([]rune(s)), s)
	}
	assert.True(t, rx.MatchString("aaab-"))
}
