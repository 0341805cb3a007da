// Package words turns sequences of symbol sets into concrete words.
//
// What:
//
//   - Product: Cartesian expansion of a path's per-edge label sets into every
//     concrete symbol sequence the path can spell.
//   - Collector: a duplicate-free accumulator of words that keeps the order in
//     which words were first added.
//
// Why:
//
//	Word enumeration over an automaton walks shortest paths, expands each path
//	into words, and merges the results of many overlapping paths.
//
// Complexity:
//
//   - Product: O(Π|set_i| · n) time and output for n sets.
//   - Collector.Add: O(len(word)) expected.
package words
