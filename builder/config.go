// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • printer      = fmt.Sprint
//   • startPayload = DefaultStartPayload

package builder

import "fmt"

// builderConfig aggregates all knobs used by a Builder.
type builderConfig[T comparable] struct {
	// printer renders a symbol inside vertex descriptions.
	printer func(T) string
	// startPayload describes the start vertex.
	startPayload string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig[T comparable](opts ...Option[T]) builderConfig[T] {
	cfg := builderConfig[T]{
		printer:      func(v T) string { return fmt.Sprint(v) },
		startPayload: DefaultStartPayload,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.startPayload == "" {
		cfg.startPayload = DefaultStartPayload
	}

	return cfg
}
