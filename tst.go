// Package tst implements a ternary search trie: an associative
// container keyed by strings that additionally answers ordered prefix
// queries. Each node branches three ways (less, equal, greater) on a
// single Unicode code point, so the trie stays compact on sparse
// alphabets and handles characters outside the basic multilingual
// plane as one symbol.
//
// A Trie is not safe for concurrent mutation; guard it externally if
// multiple goroutines write.
package tst

import "unicode/utf8"

// Trie is a ternary search trie mapping string keys to values of
// type V. The zero value is an empty trie ready for use.
type Trie[V any] struct {
	root *Node[V]
	size int
}

// New creates an empty trie.
func New[V any]() *Trie[V] { return &Trie[V]{} }

// runes validates key and decodes it to code points. Decoding happens
// once up front so that a surrogate-pair character occupies a single
// node rather than two.
func runes(key string) ([]rune, error) {
	if key == "" {
		return nil, EmptyKeyError{}
	}
	if !utf8.ValidString(key) {
		return nil, InvalidKeyError{Key: key}
	}
	return []rune(key), nil
}

// Set associates value with key, overwriting any previous value.
// Validation precedes mutation: on error the trie is unmodified.
func (t *Trie[V]) Set(key string, value V) error {
	rs, err := runes(key)
	if err != nil {
		return err
	}
	t.root = t.insert(t.root, rs, 0, value)
	t.root.parent = nil
	return nil
}

// MustSet is like Set but panics on an invalid key. It returns the
// trie, so calls can be chained.
func (t *Trie[V]) MustSet(key string, value V) *Trie[V] {
	if err := t.Set(key, value); err != nil {
		panic(err)
	}
	return t
}

func (t *Trie[V]) insert(n *Node[V], key []rune, i int, value V) *Node[V] {
	c := key[i]
	if n == nil {
		n = &Node[V]{key: c}
	}
	switch {
	case c < n.key:
		n.left = t.insert(n.left, key, i, value)
		n.left.parent = n
	case c > n.key:
		n.right = t.insert(n.right, key, i, value)
		n.right.parent = n
	case i < len(key)-1:
		n.mid = t.insert(n.mid, key, i+1, value)
		n.mid.parent = n
	default:
		if !n.hasValue {
			t.size++
		}
		n.value, n.hasValue = value, true
	}
	return n
}

// Get returns the value stored under key. The boolean reports whether
// the key is present; a node that exists only as an interior path does
// not count.
func (t *Trie[V]) Get(key string) (V, bool, error) {
	var zero V
	rs, err := runes(key)
	if err != nil {
		return zero, false, err
	}
	n := find(t.root, rs, 0)
	if n == nil || !n.hasValue {
		return zero, false, nil
	}
	return n.value, true, nil
}

// find descends to the node at which key terminates, or nil. The
// returned node may be interior-only; callers check hasValue.
func find[V any](n *Node[V], key []rune, i int) *Node[V] {
	if n == nil {
		return nil
	}
	c := key[i]
	switch {
	case c < n.key:
		return find(n.left, key, i)
	case c > n.key:
		return find(n.right, key, i)
	case i < len(key)-1:
		return find(n.mid, key, i+1)
	default:
		return n
	}
}

// Del removes key from the trie. Deleting an absent, empty, or
// malformed key is a no-op. It returns the trie, so calls can be
// chained.
func (t *Trie[V]) Del(key string) *Trie[V] {
	rs, err := runes(key)
	if err != nil {
		return t
	}
	n := find(t.root, rs, 0)
	if n == nil || !n.hasValue {
		return t
	}
	var zero V
	n.value, n.hasValue = zero, false
	t.size--
	t.unlink(n)
	return t
}

// unlink structurally removes n, whose value has already been cleared,
// unless it still serves as an interior path. Cases ordered from most
// to least specific.
func (t *Trie[V]) unlink(n *Node[V]) {
	switch {
	case n.mid != nil:
		// Longer keys still pass through here; the node stays.
	case n.left == nil && n.right == nil:
		// Dead leaf. Splice it out, then walk upward: the parent may
		// have just lost its only child.
		p := n.parent
		t.replace(n, nil)
		for p != nil && !p.hasValue &&
			p.left == nil && p.mid == nil && p.right == nil {
			gp := p.parent
			t.replace(p, nil)
			p = gp
		}
	case n.left == nil:
		t.replace(n, n.right)
	case n.right == nil:
		t.replace(n, n.left)
	default:
		// Two children: promote the in-order predecessor, the
		// rightmost node of the left subtree. It keeps its own middle
		// subtree and value; only its position among siblings moves.
		pred := n.left
		for pred.right != nil {
			pred = pred.right
		}
		if pred != n.left {
			pred.parent.right = pred.left
			if pred.left != nil {
				pred.left.parent = pred.parent
			}
			pred.left = n.left
			n.left.parent = pred
		}
		pred.right = n.right
		n.right.parent = pred
		t.replace(n, pred)
	}
}

// replace puts repl into the parent slot currently occupied by n,
// updating the root reference when n has no parent. The detached node
// keeps no links into the tree.
func (t *Trie[V]) replace(n, repl *Node[V]) {
	p := n.parent
	switch {
	case p == nil:
		t.root = repl
	case p.left == n:
		p.left = repl
	case p.mid == n:
		p.mid = repl
	default:
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
	n.parent, n.left, n.mid, n.right = nil, nil, nil, nil
}

// Contains reports whether key is among the enumerated keys. It is
// deliberately defined through Keys, so its cost is linear in the
// number of stored keys; use Get for a fast membership check.
func (t *Trie[V]) Contains(key string) bool {
	for _, k := range t.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Size returns the number of stored keys.
func (t *Trie[V]) Size() int { return t.size }

// IsEmpty reports whether the trie holds no keys.
func (t *Trie[V]) IsEmpty() bool { return t.size == 0 }

// Root exposes the node graph for read-only collaborators such as
// renderers. Mutating the returned nodes is not supported.
func (t *Trie[V]) Root() *Node[V] { return t.root }
