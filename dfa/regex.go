package dfa

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dfs"
	"github.com/katalvlaran/lvlath-automata/symbols"
)

// Regex synthesizes a regular expression for the language, rendering each
// symbol with printer. The result is unanchored and uses RE2 syntax.
//
// Rendering, per vertex reached depth-first from start:
//   - Self-loops merge into one class followed by "*"; a wildcard self-loop is ".*".
//   - Every other edge renders as its class followed by its target's rendering.
//   - Several branches alternate inside "(...)", or become one bracket class
//     when every branch is a single character.
//   - An accepting vertex that also has branches makes them optional with "?".
//
// A class is "." for a wildcard, an escaped literal for one symbol, a bracket
// class when every symbol prints as one character, and an alternation otherwise.
// Edges whose label is empty match nothing and are dropped, as are edges into
// vertices that cannot reach an accepting vertex. The empty string is the
// rendering of the language holding only the empty word.
//
// Errors:
//   - ErrUnsupportedTopology if a cycle through two or more vertices is
//     reachable from start.
//   - ErrEmptyLanguage if no accepting vertex is reachable.
func (a *Automaton[S, T]) Regex(printer func(T) string) (string, error) {
	cyc, err := dfs.FindCycle(a.graph, a.start)
	if err != nil {
		return "", fmt.Errorf("dfa: regex: %w", err)
	}
	if cyc != nil {
		return "", fmt.Errorf("%w: cycle through vertices %v", ErrUnsupportedTopology, cyc)
	}

	live, err := a.coReachable()
	if err != nil {
		return "", fmt.Errorf("dfa: regex: %w", err)
	}
	if !live[a.start] {
		return "", ErrEmptyLanguage
	}
	r := &regexWriter[S, T]{a: a, printer: printer, live: live, memo: make(map[core.VertexID]fragment)}

	return r.vertex(a.start).text, nil
}

// fragment is a rendered piece; atom marks text that a quantifier or a
// concatenation can follow without extra parentheses.
type fragment struct {
	text string
	atom bool
	char bool // a single literal character, eligible for bracket merging
	raw  string
}

type regexWriter[S any, T comparable] struct {
	a       *Automaton[S, T]
	printer func(T) string
	live    map[core.VertexID]bool
	memo    map[core.VertexID]fragment
}

func (r *regexWriter[S, T]) vertex(v core.VertexID) fragment {
	if f, ok := r.memo[v]; ok {
		return f
	}

	edges, _ := r.a.graph.OutboundEdges(v)
	var (
		loopWildcard bool
		loopLabel    = symbols.New[T]()
		branches     []fragment
	)
	for _, e := range edges {
		if (e.Label != nil && e.Label.Len() == 0) || !r.live[e.To] {
			continue
		}
		if e.IsSelfLoop() {
			if e.IsWildcard() {
				loopWildcard = true
			} else {
				loopLabel.Add(e.Label.Values()...)
			}
			continue
		}
		cls := r.class(e.Label)
		tail := r.vertex(e.To)
		if tail.text == "" {
			branches = append(branches, cls)
			continue
		}
		branches = append(branches, fragment{text: cls.text + tail.text})
	}

	var sb strings.Builder
	switch {
	case loopWildcard:
		sb.WriteString(".*")
	case loopLabel.Len() > 0:
		sb.WriteString(r.class(loopLabel).text)
		sb.WriteString("*")
	}

	body := joinBranches(branches)
	if body.text != "" && r.a.IsAccepted(v) {
		if !body.atom {
			body.text = "(" + body.text + ")"
		}
		body.text += "?"
	}
	sb.WriteString(body.text)

	out := fragment{text: sb.String()}
	out.atom = sb.Len() == len(body.text) && body.atom
	r.memo[v] = out

	return out
}

// joinBranches combines alternative continuations of one vertex.
func joinBranches(branches []fragment) fragment {
	branches = dedupe(branches)
	switch len(branches) {
	case 0:
		return fragment{}
	case 1:
		return branches[0]
	}
	allChars := true
	for _, b := range branches {
		if !b.char {
			allChars = false
			break
		}
	}
	if allChars {
		raws := make([]string, len(branches))
		for i, b := range branches {
			raws[i] = b.raw
		}
		return bracket(raws)
	}
	parts := make([]string, len(branches))
	for i, b := range branches {
		parts[i] = b.text
	}

	return fragment{text: "(" + strings.Join(parts, "|") + ")", atom: true}
}

func dedupe(fs []fragment) []fragment {
	seen := make(map[string]bool, len(fs))
	out := fs[:0:0]
	for _, f := range fs {
		if f.text == "" || seen[f.text] {
			continue
		}
		seen[f.text] = true
		out = append(out, f)
	}

	return out
}

// class renders one label set.
func (r *regexWriter[S, T]) class(label *symbols.Set[T]) fragment {
	if label == nil {
		return fragment{text: ".", atom: true}
	}
	vals := label.Values()
	printed := make([]string, 0, len(vals))
	single := true
	for _, v := range vals {
		p := r.printer(v)
		if p == "" {
			continue
		}
		printed = append(printed, p)
		if utf8.RuneCountInString(p) != 1 {
			single = false
		}
	}
	switch {
	case len(printed) == 0:
		return fragment{}
	case len(printed) == 1 && single:
		return fragment{text: regexp.QuoteMeta(printed[0]), atom: true, char: true, raw: printed[0]}
	case len(printed) == 1:
		return fragment{text: "(" + regexp.QuoteMeta(printed[0]) + ")", atom: true}
	case single:
		return bracket(printed)
	}
	quoted := make([]string, len(printed))
	for i, p := range printed {
		quoted[i] = regexp.QuoteMeta(p)
	}

	return fragment{text: "(" + strings.Join(quoted, "|") + ")", atom: true}
}

// bracket renders single characters as one bracket class.
func bracket(chars []string) fragment {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, c := range chars {
		switch c {
		case `\`, `]`, `[`, `^`, `-`:
			sb.WriteByte('\\')
		}
		sb.WriteString(c)
	}
	sb.WriteByte(']')

	return fragment{text: sb.String(), atom: true}
}

// coReachable returns the vertices reachable from start that can reach an
// accepting vertex. Callers must have ruled out cycles through two or more
// vertices: every successor of v is then settled before v exits.
func (a *Automaton[S, T]) coReachable() (map[core.VertexID]bool, error) {
	live := make(map[core.VertexID]bool)
	passable := func(_, _ core.VertexID, eid core.EdgeID) bool {
		e, _ := a.graph.Edge(eid)
		return !e.IsSelfLoop() && (e.IsWildcard() || e.Label.Len() > 0)
	}
	settle := func(v core.VertexID) error {
		if a.accepted[v] {
			live[v] = true
			return nil
		}
		edges, _ := a.graph.OutboundEdges(v)
		for _, e := range edges {
			if passable(e.From, e.To, e.ID) && live[e.To] {
				live[v] = true
				break
			}
		}

		return nil
	}
	if _, err := dfs.DFS(a.graph, a.start, dfs.WithFilterEdge(passable), dfs.WithOnExit(settle)); err != nil {
		return nil, err
	}

	return live, nil
}
