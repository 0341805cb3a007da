package words

// node is one trie position; end marks that the path to it is a stored word.
type node[T comparable] struct {
	next map[T]*node[T]
	end  bool
}

// Collector accumulates distinct words in first-insertion order.
// The zero value is ready to use. Not safe for concurrent use.
type Collector[T comparable] struct {
	root  node[T]
	words [][]T
}

// Add stores a copy of word and reports whether it was new.
func (c *Collector[T]) Add(word []T) bool {
	n := &c.root
	for _, sym := range word {
		if n.next == nil {
			n.next = make(map[T]*node[T])
		}
		child, ok := n.next[sym]
		if !ok {
			child = &node[T]{}
			n.next[sym] = child
		}
		n = child
	}
	if n.end {
		return false
	}
	n.end = true
	c.words = append(c.words, append([]T{}, word...))

	return true
}

// AddAll adds every word and returns how many were new.
func (c *Collector[T]) AddAll(words [][]T) int {
	added := 0
	for _, w := range words {
		if c.Add(w) {
			added++
		}
	}

	return added
}

// Words returns the stored words in insertion order.
// The outer slice is a copy; the words themselves must not be modified.
func (c *Collector[T]) Words() [][]T {
	return append([][]T(nil), c.words...)
}

// Len returns the number of distinct words stored.
func (c *Collector[T]) Len() int {
	return len(c.words)
}
