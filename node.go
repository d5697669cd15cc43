package tst

// A Node holds exactly one Unicode code point of a stored key. Keys
// reachable through left sort before n.key, keys through right sort
// after it, and the middle subtree continues the word with its next
// code point. The parent link is a non-owning back-reference used only
// to rewrite child slots during deletion.
type Node[V any] struct {
	key      rune
	value    V
	hasValue bool

	parent, left, mid, right *Node[V]
}

// Key returns the code point stored at this node.
func (n *Node[V]) Key() rune { return n.key }

// Value returns the payload terminating at this node, if any. Interior
// nodes that no key terminates at report false.
func (n *Node[V]) Value() (V, bool) { return n.value, n.hasValue }

func (n *Node[V]) Left() *Node[V]   { return n.left }
func (n *Node[V]) Mid() *Node[V]    { return n.mid }
func (n *Node[V]) Right() *Node[V]  { return n.right }
func (n *Node[V]) Parent() *Node[V] { return n.parent }
