package tst

// Keys returns every stored key. Emission order is the depth-first
// left/middle/right order of the underlying nodes; sibling subtrees are
// not globally sorted beyond the left/right split.
func (t *Trie[V]) Keys() []string {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns the stored keys beginning with prefix,
// including prefix itself when it is stored. An unmatched prefix yields
// an empty result, not an error. The empty prefix matches every key.
func (t *Trie[V]) KeysWithPrefix(prefix string) []string {
	keys := []string{}
	t.SearchWithPrefix(prefix, func(key string, _ V) {
		keys = append(keys, key)
	})
	return keys
}

// SearchWithPrefix invokes fn for each stored key beginning with
// prefix, in the same order as KeysWithPrefix.
func (t *Trie[V]) SearchWithPrefix(prefix string, fn func(key string, value V)) {
	if prefix == "" {
		collect(t.root, nil, fn)
		return
	}
	rs, err := runes(prefix)
	if err != nil {
		return
	}
	n := find(t.root, rs, 0)
	if n == nil {
		return
	}
	if n.hasValue {
		fn(prefix, n.value)
	}
	collect(n.mid, rs, fn)
}

// collect walks the subtree rooted at n, emitting prefix plus the path
// so far at every value-holding node. Words are materialized before the
// shared buffer is reused by a sibling branch.
func collect[V any](n *Node[V], prefix []rune, fn func(key string, value V)) {
	if n == nil {
		return
	}
	collect(n.left, prefix, fn)
	word := append(prefix, n.key)
	if n.hasValue {
		fn(string(word), n.value)
	}
	collect(n.mid, word, fn)
	collect(n.right, prefix, fn)
}

// DFS visits every node in the trie, value-holding or not, in
// node/left/middle/right order, passing each node to fn.
func (t *Trie[V]) DFS(fn func(n *Node[V])) {
	dfs(t.root, fn)
}

func dfs[V any](n *Node[V], fn func(n *Node[V])) {
	if n == nil {
		return
	}
	fn(n)
	dfs(n.left, fn)
	dfs(n.mid, fn)
	dfs(n.right, fn)
}
