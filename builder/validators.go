// Package builder provides validation helpers to enforce
// parameter contracts of the repetition combinators.
//
// Each function returns an error wrapping ErrInvalidArgument
// when its precondition is violated.
package builder

// validateCount ensures a repetition count is ≥ MinRepeat.
// Complexity: O(1) time and space.
func validateCount(method string, n int) error {
	if n < MinRepeat {
		return wrapf(method, ErrInvalidArgument, "count must be ≥ %d, got %d", MinRepeat, n)
	}

	return nil
}

// validateRange checks MinRepeat ≤ min ≤ max.
// Complexity: O(1) time and space.
func validateRange(min, max int) error {
	if err := validateCount(MethodRange, min); err != nil {
		return err
	}
	if max < min {
		return wrapf(MethodRange, ErrInvalidArgument, "max must be ≥ min, got min=%d max=%d", min, max)
	}

	return nil
}

// validateSymbols ensures every symbol is a member of the builder's alphabet.
// Complexity: O(len(syms)) expected.
func (b *Builder[T]) validateSymbols(method string, syms []T) error {
	for _, s := range syms {
		if !b.alphabet.Contains(s) {
			return wrapf(method, ErrSymbolOutsideAlphabet, "%s", b.cfg.printer(s))
		}
	}

	return nil
}
