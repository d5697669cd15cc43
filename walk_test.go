package tst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dict() *Trie[string] {
	tr := New[string]()
	for _, k := range []string{"foo", "fore", "fobe", "fooooo", "bar", "baz"} {
		tr.MustSet(k, k)
	}
	return tr
}

func TestKeys(t *testing.T) {
	assert := assert.New(t)

	tr := dict()
	assert.ElementsMatch(
		[]string{"foo", "fore", "fobe", "fooooo", "bar", "baz"},
		tr.Keys(),
	)

	tr.Del("fore").Del("bar")
	assert.ElementsMatch(
		[]string{"foo", "fobe", "fooooo", "baz"},
		tr.Keys(),
	)
}

func TestKeysWithPrefix(t *testing.T) {
	assert := assert.New(t)

	tr := dict()
	assert.ElementsMatch(
		[]string{"foo", "fore", "fobe", "fooooo"},
		tr.KeysWithPrefix("fo"),
	)

	// A stored key equal to the prefix is itself a match.
	assert.ElementsMatch(
		[]string{"foo", "fooooo"},
		tr.KeysWithPrefix("foo"),
	)

	// The empty prefix enumerates everything.
	assert.ElementsMatch(tr.Keys(), tr.KeysWithPrefix(""))

	assert.Empty(tr.KeysWithPrefix("zzz"))
	assert.Empty(tr.KeysWithPrefix("barz"))
	assert.Empty(New[int]().KeysWithPrefix("a"))
}

func TestSearchWithPrefix(t *testing.T) {
	assert := assert.New(t)

	tr := dict()
	got := map[string]string{}
	tr.SearchWithPrefix("ba", func(k, v string) { got[k] = v })
	assert.Equal(map[string]string{"bar": "bar", "baz": "baz"}, got)

	calls := 0
	tr.SearchWithPrefix("nope", func(string, string) { calls++ })
	assert.Equal(0, calls)
}

func TestContainsMatchesKeys(t *testing.T) {
	assert := assert.New(t)

	tr := dict()
	for _, k := range tr.Keys() {
		assert.True(tr.Contains(k), k)
	}
	for _, k := range []string{"fo", "ba", "quux", ""} {
		assert.False(tr.Contains(k), k)
	}
}

func TestDFS(t *testing.T) {
	assert := assert.New(t)

	// "ab" stores two nodes; only the terminal one holds the value.
	tr := New[int]().MustSet("ab", 7)
	var seen []rune
	values := 0
	tr.DFS(func(n *Node[int]) {
		seen = append(seen, n.Key())
		if _, ok := n.Value(); ok {
			values++
		}
	})
	assert.Equal([]rune{'a', 'b'}, seen)
	assert.Equal(1, values)
}

func TestDFSOrder(t *testing.T) {
	assert := assert.New(t)

	// Node first, then left, middle, right.
	tr := New[int]().
		MustSet("m", 0).
		MustSet("a", 0).
		MustSet("mx", 0).
		MustSet("z", 0)
	var seen []rune
	tr.DFS(func(n *Node[int]) { seen = append(seen, n.Key()) })
	assert.Equal([]rune{'m', 'a', 'x', 'z'}, seen)
}
