// Package config provides configuration management for dfatool.
//
// A config file lists named patterns, each compiled over its own alphabet,
// plus the inputs to run through the compiled automaton:
//
//	version: 1
//	word_limit: 20
//	export_dir: ./out
//	patterns:
//	  - name: id
//	    alphabet: "0123456789abc"
//	    source: "exactly 2 [0-9]; oneormore [a-c]; accept"
//	    inputs: ["12ab", "1a"]
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to missing fields.
const (
	DefaultVersion   = 1
	DefaultWordLimit = 20
)

// Validation errors.
var (
	ErrNoPatterns     = errors.New("config: no patterns")
	ErrInvalidPattern = errors.New("config: invalid pattern")
)

// Config is the dfatool configuration file.
type Config struct {
	Version   int       `yaml:"version"`
	WordLimit int       `yaml:"word_limit"`
	ExportDir string    `yaml:"export_dir,omitempty"`
	Patterns  []Pattern `yaml:"patterns"`
}

// Pattern is one named pattern program.
type Pattern struct {
	Name     string   `yaml:"name"`
	Alphabet string   `yaml:"alphabet"`
	Source   string   `yaml:"source"`
	Inputs   []string `yaml:"inputs,omitempty"`

	// CheckDeterministic rejects the pattern when two outbound edges of one
	// vertex can match the same symbol.
	CheckDeterministic bool `yaml:"check_deterministic,omitempty"`
}

// DefaultConfig returns a config with defaults and no patterns.
func DefaultConfig() *Config {
	return &Config{
		Version:   DefaultVersion,
		WordLimit: DefaultWordLimit,
	}
}

// Load reads, parses, defaults, and validates the config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse is Load for in-memory YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.WordLimit == 0 {
		c.WordLimit = DefaultWordLimit
	}
	for i := range c.Patterns {
		if c.Patterns[i].Name == "" {
			c.Patterns[i].Name = fmt.Sprintf("pattern-%d", i+1)
		}
	}
}

// Validate checks that every pattern has an alphabet and a source and that
// names are unique. A negative WordLimit means unlimited.
func (c *Config) Validate() error {
	if len(c.Patterns) == 0 {
		return ErrNoPatterns
	}
	seen := make(map[string]bool, len(c.Patterns))
	for _, p := range c.Patterns {
		switch {
		case p.Alphabet == "":
			return fmt.Errorf("%w: %s: empty alphabet", ErrInvalidPattern, p.Name)
		case p.Source == "":
			return fmt.Errorf("%w: %s: empty source", ErrInvalidPattern, p.Name)
		case seen[p.Name]:
			return fmt.Errorf("%w: %s: duplicate name", ErrInvalidPattern, p.Name)
		}
		seen[p.Name] = true
	}

	return nil
}

// Lookup returns the pattern with the given name.
func (c *Config) Lookup(name string) (Pattern, bool) {
	for _, p := range c.Patterns {
		if p.Name == name {
			return p, true
		}
	}

	return Pattern{}, false
}
