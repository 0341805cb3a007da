// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Combinators never return errors directly; the first failure is
//     recorded on the Builder and surfaced by Err and GenerateParser.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a negative repetition count or a Range
// whose max is smaller than its min.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* fix counts */ }.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrSymbolOutsideAlphabet indicates a combinator was given a symbol that
// the builder's alphabet does not contain.
var ErrSymbolOutsideAlphabet = errors.New("builder: symbol outside alphabet")

// ErrForeignState indicates a branch or loop body returned a State that
// belongs to a different Builder.
var ErrForeignState = errors.New("builder: state belongs to another builder")

// wrapf attaches method context to a sentinel, keeping it visible to errors.Is.
// The result reads "<Method>: <sentinel>: <formatted message>".
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
