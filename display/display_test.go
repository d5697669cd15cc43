package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tst "github.com/IMax153/ternary-search-trie"
)

func TestTree(t *testing.T) {
	assert := assert.New(t)

	tr := tst.New[int]().
		MustSet("b", 1).
		MustSet("a", 2).
		MustSet("c", 3)

	assert.Equal(
		"'b' = 1\n"+
			"  L 'a' = 2\n"+
			"  R 'c' = 3\n",
		Tree(tr),
	)
}

func TestTreeInteriorNodes(t *testing.T) {
	assert := assert.New(t)

	// Interior nodes carry no value marker.
	tr := tst.New[string]().MustSet("fo", "x")
	assert.Equal(
		"'f'\n"+
			"  M 'o' = x\n",
		Tree(tr),
	)
}

func TestTreeEmpty(t *testing.T) {
	assert.Equal(t, "", Tree(tst.New[int]()))
}

func TestTreeDoesNotMutate(t *testing.T) {
	assert := assert.New(t)

	tr := tst.New[int]().MustSet("foo", 1).MustSet("bar", 2)
	before := tr.Keys()
	_ = Tree(tr)
	assert.ElementsMatch(before, tr.Keys())
	assert.Equal(2, tr.Size())
}
