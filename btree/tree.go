package btree

import (
	"cmp"
	"fmt"
	"strings"
	"sync"
)

/*
Btree only keeps a pointer to root node of the tree.
A tree is made up of nodes. Each node contains up to MaxKeys keys.
Every method takes the tree lock, so one Insert is a single step to any reader.
*/
type Btree[K any] struct {
	mu      sync.RWMutex
	root    *node[K]
	compare CompareFunc[K]
	size    int
}

// New returns an empty tree ordered by compare. The root starts as an empty leaf.
func New[K any](compare CompareFunc[K]) *Btree[K] {
	return &Btree[K]{
		root:    &node[K]{},
		compare: compare,
	}
}

// NewOrdered returns an empty tree over a built-in ordered type.
func NewOrdered[K cmp.Ordered]() *Btree[K] {
	return New(Ordered[K]())
}

/*
Create a new root node.
The existing root (already holding the left half of its split) becomes the new root's
left child, the sibling created by the split becomes its right child.
This is the only place the tree grows taller.
*/
func (t *Btree[K]) growRoot(promoted K, right *node[K]) {
	newRoot := &node[K]{
		keys:     make([]K, 0, maxChildren),
		children: make([]*node[K], 0, maxChildren+1),
	}
	newRoot.insertKeyAt(0, promoted)
	newRoot.insertChildAt(0, t.root)
	newRoot.insertChildAt(1, right)
	t.root = newRoot
}

/*
Insert adds key to the tree and reports whether it was stored.
An equal key (per the comparator) already in the tree makes the call a no-op
that returns false.
*/
func (t *Btree[K]) Insert(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	promoted, right, inserted, split := t.root.insert(key, t.compare)
	if !inserted {
		return false
	}
	if split {
		t.growRoot(promoted, right)
	}
	t.size++
	return true
}

// Has reports whether an equal key is stored in the tree.
func (t *Btree[K]) Has(key K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for next := t.root; next != nil; {
		pos, found := next.search(key, t.compare)
		if found {
			return true
		}
		if next.isLeaf() {
			return false
		}
		next = next.children[pos]
	}
	return false
}

// Len returns the number of keys stored.
func (t *Btree[K]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}

// Height counts node levels; an empty or single-leaf tree has height 1.
func (t *Btree[K]) Height() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.height()
}

func (t *Btree[K]) height() int {
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// Keys returns every key in ascending order.
func (t *Btree[K]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]K, 0, t.size)
	t.root.walk(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Ascend calls fn for each key in ascending order until fn returns false.
// fn must not modify the tree.
func (t *Btree[K]) Ascend(fn func(K) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	t.root.walk(fn)
}

// String renders the tree on one line, e.g. [[1 2] 3 [4]].
func (t *Btree[K]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var b strings.Builder
	writeNode(&b, t.root)
	return b.String()
}

func writeNode[K any](b *strings.Builder, n *node[K]) {
	b.WriteByte('[')
	for i, key := range n.keys {
		if !n.isLeaf() {
			writeNode(b, n.children[i])
			b.WriteByte(' ')
		}
		if i > 0 && n.isLeaf() {
			b.WriteByte(' ')
		}
		fmt.Fprint(b, key)
		if !n.isLeaf() {
			b.WriteByte(' ')
		}
	}
	if !n.isLeaf() {
		writeNode(b, n.children[len(n.keys)])
	}
	b.WriteByte(']')
}
