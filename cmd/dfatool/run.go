package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvlath-automata/converters"
	"github.com/katalvlaran/lvlath-automata/dfa"
	"github.com/katalvlaran/lvlath-automata/internal/config"
	"github.com/katalvlaran/lvlath-automata/patternlang"
)

// options are the parsed command-line flags.
type options struct {
	configPath    string
	pattern       string
	exportDir     string
	alphabet      string
	source        string
	wordLimit     int
	deterministic bool
	inputs        []string
}

// resolve builds the effective config from flags and the optional file.
func resolve(opts options) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case opts.source != "":
		cfg = config.DefaultConfig()
		cfg.Patterns = []config.Pattern{{
			Name:     "cli",
			Alphabet: opts.alphabet,
			Source:   opts.source,
			Inputs:   opts.inputs,
		}}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	case opts.configPath != "":
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, errors.Wrapf(err, "load %s", opts.configPath)
		}
	default:
		return nil, errors.New("either -config or -src is required")
	}

	if opts.pattern != "" {
		p, ok := cfg.Lookup(opts.pattern)
		if !ok {
			return nil, errors.Errorf("pattern %q not in config", opts.pattern)
		}
		cfg.Patterns = []config.Pattern{p}
	}
	if opts.exportDir != "" {
		cfg.ExportDir = opts.exportDir
	}
	if opts.wordLimit != 0 {
		cfg.WordLimit = opts.wordLimit
	}
	if opts.deterministic {
		for i := range cfg.Patterns {
			cfg.Patterns[i].CheckDeterministic = true
		}
	}

	return cfg, nil
}

// run compiles every configured pattern and writes a report to out.
func run(opts options, out io.Writer) error {
	cfg, err := resolve(opts)
	if err != nil {
		return err
	}
	if cfg.ExportDir != "" {
		if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
			return errors.Wrap(err, "create export dir")
		}
	}
	for _, p := range cfg.Patterns {
		if err := report(p, cfg, out); err != nil {
			return errors.Wrapf(err, "pattern %s", p.Name)
		}
	}

	return nil
}

func printRune(r rune) string { return string(r) }

// report compiles one pattern and prints its regex, words, and verdicts.
func report(p config.Pattern, cfg *config.Config, out io.Writer) error {
	a, err := patternlang.Compile(p.Source, p.Alphabet)
	if err != nil {
		return err
	}
	stats := a.Graph().Stats()
	klog.V(1).Infof("%s: %d vertices, %d edges, %d accepting", p.Name, stats.VertexCount, stats.EdgeCount, len(a.Accepted()))

	if p.CheckDeterministic {
		if err := a.CheckDeterministic(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "== %s\n", p.Name)
	switch re, err := a.Regex(printRune); {
	case errors.Is(err, dfa.ErrEmptyLanguage):
		fmt.Fprintf(out, "regex: (empty language)\n")
	case err != nil:
		klog.Warningf("%s: %v", p.Name, err)
		fmt.Fprintf(out, "regex: (unavailable)\n")
	default:
		fmt.Fprintf(out, "regex: %s\n", re)
	}

	var shown []string
	for w := range a.Words() {
		if cfg.WordLimit >= 0 && len(shown) >= cfg.WordLimit {
			break
		}
		shown = append(shown, fmt.Sprintf("%q", string(w)))
	}
	fmt.Fprintf(out, "words: %s\n", strings.Join(shown, " "))

	switch w, _, err := a.CheapestWord(nil); {
	case errors.Is(err, dfa.ErrEmptyLanguage):
		fmt.Fprintf(out, "shortest: (none)\n")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "shortest: %q\n", string(w))
	}

	for _, in := range p.Inputs {
		fmt.Fprintf(out, "%q: %s\n", in, a.Parse([]rune(in)))
	}

	if cfg.ExportDir != "" {
		if err := export(a, filepath.Join(cfg.ExportDir, p.Name+".yaml")); err != nil {
			return err
		}
	}

	return nil
}

// export writes a as YAML to path.
func export(a *dfa.Automaton[string, rune], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	if err := writeAndClose(a, f); err != nil {
		return errors.Wrapf(err, "export %s", path)
	}
	klog.V(1).Infof("wrote %s", path)

	return nil
}

// writeAndClose encodes a into w and closes it, reporting a Close failure
// when the encode itself succeeded.
func writeAndClose(a *dfa.Automaton[string, rune], w io.WriteCloser) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close")
		}
	}()

	return converters.Export(a, printRune, w)
}
