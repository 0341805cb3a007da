// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// options.go: functional options for New.
//
// Contract:
//   • Options are functional (type Option[T] func(*builderConfig[T])).
//   • Option constructors validate and panic on meaningless inputs.
//     Combinators themselves never panic.

package builder

// Option customizes a Builder before its start vertex is created.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option[T comparable] func(*builderConfig[T])

// WithSymbolPrinter sets how symbols are rendered in vertex descriptions.
// Panics on nil.
func WithSymbolPrinter[T comparable](fn func(T) string) Option[T] {
	if fn == nil {
		panic("builder: WithSymbolPrinter(nil)")
	}
	return func(c *builderConfig[T]) {
		c.printer = fn
	}
}

// WithStartPayload sets the description of the start vertex.
// An empty value means DefaultStartPayload.
func WithStartPayload[T comparable](payload string) Option[T] {
	return func(c *builderConfig[T]) {
		c.startPayload = payload
	}
}
