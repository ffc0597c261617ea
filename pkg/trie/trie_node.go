package trie

// Node is a prefix tree node.
// Children are keyed by rune so accented letters are ordinary symbols.
type Node struct {
	Children map[rune]*Node // child nodes
	IsEnd    bool           // marks the end of a word
}

// NewNode creates an empty node.
func NewNode() *Node {
	return &Node{
		Children: make(map[rune]*Node),
		IsEnd:    false,
	}
}

// child returns the child for r, creating it on demand.
func (n *Node) child(r rune) *Node {
	c, ok := n.Children[r]
	if !ok {
		c = NewNode()
		n.Children[r] = c
	}
	return c
}
