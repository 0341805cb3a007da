package converters

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-automata/core"
	"github.com/katalvlaran/lvlath-automata/dfa"
)

// ErrBadDocument indicates a document that references unknown vertices or
// symbols that cannot be decoded.
var ErrBadDocument = errors.New("converters: malformed document")

// Document is the YAML form of an automaton.
type Document struct {
	Start    int        `yaml:"start"`
	Alphabet []string   `yaml:"alphabet,omitempty"`
	Vertices []Vertex   `yaml:"vertices"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// Vertex is one vertex entry.
type Vertex struct {
	ID        int    `yaml:"id"`
	Payload   string `yaml:"payload"`
	Accepting bool   `yaml:"accepting,omitempty"`
}

// EdgeSpec is one edge entry.
type EdgeSpec struct {
	ID       int      `yaml:"id"`
	From     int      `yaml:"from"`
	To       int      `yaml:"to"`
	Labels   []string `yaml:"labels,omitempty"`
	Wildcard bool     `yaml:"wildcard,omitempty"`
}

// NewDocument captures a in storage order, rendering payloads with fmt and
// symbols with printer.
func NewDocument[S any, T comparable](a *dfa.Automaton[S, T], printer func(T) string) Document {
	g := a.Graph()
	doc := Document{Start: int(a.Start())}
	for _, s := range a.Alphabet().Values() {
		doc.Alphabet = append(doc.Alphabet, printer(s))
	}
	for _, v := range g.Vertices() {
		p, _ := g.Payload(v)
		doc.Vertices = append(doc.Vertices, Vertex{
			ID:        int(v),
			Payload:   fmt.Sprint(p),
			Accepting: a.IsAccepted(v),
		})
	}
	for _, e := range g.Edges() {
		spec := EdgeSpec{ID: int(e.ID), From: int(e.From), To: int(e.To)}
		if e.IsWildcard() {
			spec.Wildcard = true
		} else {
			for _, s := range e.Label.Values() {
				spec.Labels = append(spec.Labels, printer(s))
			}
		}
		doc.Edges = append(doc.Edges, spec)
	}

	return doc
}

// ToYAML marshals a as a Document.
func ToYAML[S any, T comparable](a *dfa.Automaton[S, T], printer func(T) string) ([]byte, error) {
	out, err := yaml.Marshal(NewDocument(a, printer))
	if err != nil {
		return nil, fmt.Errorf("converters: marshal: %w", err)
	}

	return out, nil
}

// Export writes a to w as YAML.
func Export[S any, T comparable](a *dfa.Automaton[S, T], printer func(T) string, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(a, printer)); err != nil {
		return fmt.Errorf("converters: encode: %w", err)
	}

	return enc.Close()
}

// FromYAML decodes a Document and rebuilds the automaton. Vertex and edge
// handles are renumbered densely in document order; parse decodes symbols.
//
// Errors:
//   - ErrBadDocument for dangling vertex references or undecodable symbols.
//   - any YAML decoding error.
func FromYAML[T comparable](data []byte, parse func(string) (T, error)) (*dfa.Automaton[string, T], error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("converters: unmarshal: %w", err)
	}

	return FromDocument(doc, parse)
}

// decodeAll parses every symbol string.
func decodeAll[T comparable](raw []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		s, err := parse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: symbol %q: %v", ErrBadDocument, r, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// FromDocument rebuilds the automaton described by d.
func FromDocument[T comparable](d Document, parse func(string) (T, error)) (*dfa.Automaton[string, T], error) {
	g := core.NewGraph[string, T]()
	ids := make(map[int]core.VertexID, len(d.Vertices))
	for _, v := range d.Vertices {
		if _, dup := ids[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate vertex %d", ErrBadDocument, v.ID)
		}
		ids[v.ID] = g.AddVertex(v.Payload)
	}
	for _, e := range d.Edges {
		from, ok1 := ids[e.From]
		to, ok2 := ids[e.To]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: edge %d references unknown vertex", ErrBadDocument, e.ID)
		}
		eid, _ := g.AddEdge(from, to)
		if e.Wildcard {
			continue
		}
		syms, err := decodeAll(e.Labels, parse)
		if err != nil {
			return nil, err
		}
		_ = g.SetLabel(eid, syms...)
	}

	start, ok := ids[d.Start]
	if !ok {
		return nil, fmt.Errorf("%w: start vertex %d", ErrBadDocument, d.Start)
	}
	alphabet, err := decodeAll(d.Alphabet, parse)
	if err != nil {
		return nil, err
	}
	a, err := dfa.New(g, start, dfa.WithAlphabet(alphabet...))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	for _, v := range d.Vertices {
		if v.Accepting {
			_ = a.SetAccepted(ids[v.ID], true)
		}
	}

	return a, nil
}
