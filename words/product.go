package words

// Product returns every sequence that picks one element from each of sets,
// in order. The leftmost set varies slowest.
//
// Edge cases:
//   - No sets yields exactly one word, the empty one.
//   - Any empty set yields no words at all.
func Product[T any](sets [][]T) [][]T {
	total := 1
	for _, s := range sets {
		if len(s) == 0 {
			return nil
		}
		total *= len(s)
	}

	out := make([][]T, 0, total)
	idx := make([]int, len(sets))
	for {
		word := make([]T, len(sets))
		for i, s := range sets {
			word[i] = s[idx[i]]
		}
		out = append(out, word)

		// Odometer increment from the rightmost position.
		i := len(sets) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(sets[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out
		}
	}
}
