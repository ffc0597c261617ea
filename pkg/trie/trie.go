package trie

// Trie is a prefix-tree set of known identifiers.
// The zero value is not usable, call New.
type Trie struct {
	root *Node
	size int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: NewNode()}
}

// Insert adds word to the trie. Inserting an existing word is a no-op.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, r := range word {
		node = node.child(r)
	}
	if !node.IsEnd {
		node.IsEnd = true
		t.size++
	}
}

// Contains reports whether word was inserted. Exact match only.
func (t *Trie) Contains(word string) bool {
	node := t.walk(word)
	return node != nil && node.IsEnd
}

// HasPrefix reports whether any inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	node := t.walk(prefix)
	if node == nil {
		return false
	}
	return node.IsEnd || len(node.Children) > 0
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.size }

// walk follows s from the root and returns the node it ends on, or nil.
func (t *Trie) walk(s string) *Node {
	node := t.root
	for _, r := range s {
		next, ok := node.Children[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// frame is a pending node in the enumeration stack.
type frame struct {
	node   *Node
	prefix []rune
}

// Words returns every inserted word. Order is unspecified.
//
// The traversal uses an explicit stack, so stack depth does not grow
// with the vocabulary.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.size)
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.IsEnd {
			words = append(words, string(f.prefix))
		}
		for r, child := range f.node.Children {
			prefix := make([]rune, len(f.prefix)+1)
			copy(prefix, f.prefix)
			prefix[len(f.prefix)] = r
			stack = append(stack, frame{node: child, prefix: prefix})
		}
	}
	return words
}
