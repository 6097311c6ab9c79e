package cli

import (
	"fmt"

	"natbtree/btree"
	"natbtree/diagram"
)

// keyspace hides the key type of the tree a session is currently filling.
type keyspace interface {
	dump(plain bool) string
	draw(opts diagram.Options) string
	keys() []string
	len() int
	height() int
}

type space[K any] struct {
	tree *btree.Btree[K]
}

func (s space[K]) dump(plain bool) string {
	v := &btree.Visualizer[K]{Tree: s.tree, Plain: plain}
	return v.Visualize()
}

func (s space[K]) draw(opts diagram.Options) string {
	return diagram.Render(s.tree.Snapshot(), opts)
}

func (s space[K]) keys() []string {
	keys := s.tree.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprint(k)
	}
	return out
}

func (s space[K]) len() int    { return s.tree.Len() }
func (s space[K]) height() int { return s.tree.Height() }
