package btree

// NodeView is a detached, read-only copy of one node and its subtree.
type NodeView[K any] struct {
	Keys     []K           `json:"keys"`
	Children []NodeView[K] `json:"children,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (v NodeView[K]) IsLeaf() bool {
	return len(v.Children) == 0
}

// Snapshot is a deep copy of a tree at one point in time.
// Later insertions into the tree are never visible through it.
type Snapshot[K any] struct {
	Height int         `json:"height"`
	Len    int         `json:"len"`
	Root   NodeView[K] `json:"root"`
}

// Snapshot copies the whole tree under the read lock.
func (t *Btree[K]) Snapshot() *Snapshot[K] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return &Snapshot[K]{
		Height: t.height(),
		Len:    t.size,
		Root:   viewOf(t.root),
	}
}

func viewOf[K any](n *node[K]) NodeView[K] {
	v := NodeView[K]{Keys: append(make([]K, 0, len(n.keys)), n.keys...)}
	if !n.isLeaf() {
		v.Children = make([]NodeView[K], len(n.children))
		for i, child := range n.children {
			v.Children[i] = viewOf(child)
		}
	}
	return v
}

// Walk visits the snapshot depth first, parents before children.
// depth is 0 for the root.
func (s *Snapshot[K]) Walk(fn func(v NodeView[K], depth int)) {
	var visit func(v NodeView[K], depth int)
	visit = func(v NodeView[K], depth int) {
		fn(v, depth)
		for _, child := range v.Children {
			visit(child, depth+1)
		}
	}
	visit(s.Root, 0)
}
