// Package display renders a ternary search trie as indented text. It
// walks the node graph through read-only accessors and never mutates
// the trie.
package display

import (
	"fmt"
	"io"
	"strings"

	tst "github.com/IMax153/ternary-search-trie"
)

// Tree renders t as indented text, one node per line. Lines carry a
// branch tag (L, M or R), the node's code point, and the stored value
// for nodes that terminate a key. An empty trie renders as the empty
// string.
func Tree[V any](t *tst.Trie[V]) string {
	var b strings.Builder
	Fprint(&b, t)
	return b.String()
}

// Fprint writes the rendering of t to w.
func Fprint[V any](w io.Writer, t *tst.Trie[V]) error {
	return fprint(w, t.Root(), "", "")
}

func fprint[V any](w io.Writer, n *tst.Node[V], indent, tag string) error {
	if n == nil {
		return nil
	}
	var term string
	if v, ok := n.Value(); ok {
		term = fmt.Sprintf(" = %v", v)
	}
	if _, err := fmt.Fprintf(w, "%s%s%q%s\n", indent, tag, n.Key(), term); err != nil {
		return err
	}
	indent += "  "
	if err := fprint(w, n.Left(), indent, "L "); err != nil {
		return err
	}
	if err := fprint(w, n.Mid(), indent, "M "); err != nil {
		return err
	}
	return fprint(w, n.Right(), indent, "R ")
}
