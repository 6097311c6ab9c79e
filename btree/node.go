package btree

/*
A node keeps its keys in ascending order.
Leaves have no children, internal nodes always have len(keys)+1 of them.
Nodes are owned by exactly one parent (or by the tree, for the root).
*/
type node[K any] struct {
	keys     []K
	children []*node[K]
}

func (n *node[K]) isLeaf() bool {
	return len(n.children) == 0
}

/*
If key is found in node n, return its index i.
Else, return the index j where the key would have resided if it was present in the node.
That index is also the position of the child pointer to descend into.
*/
func (n *node[K]) search(key K, compare CompareFunc[K]) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := (low + high) / 2
		c := compare(key, n.keys[mid])
		switch {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// helper method to insert a key at an arbitrary position of a node
func (n *node[K]) insertKeyAt(pos int, key K) {
	var zero K
	n.keys = append(n.keys, zero)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = key
}

// helper method to insert a child pointer at an arbitrary position of a node
func (n *node[K]) insertChildAt(pos int, child *node[K]) {
	n.children = append(n.children, nil)
	copy(n.children[pos+1:], n.children[pos:])
	n.children[pos] = child
}

/*
split is called on a node that overflowed to MaxKeys+1 keys.
The key at len/2 moves up, everything before it stays here and everything after it
moves to a new right sibling. With MaxKeys = 3 that leaves 2 keys here, 1 key in the
sibling, and for internal nodes 3 children here and 2 in the sibling.
*/
func (n *node[K]) split() (K, *node[K]) {
	mid := len(n.keys) / 2
	promoted := n.keys[mid]

	right := &node[K]{}
	right.keys = append(make([]K, 0, maxChildren), n.keys[mid+1:]...)
	if !n.isLeaf() {
		right.children = append(make([]*node[K], 0, maxChildren+1), n.children[mid+1:]...)
	}

	// Clear the moved slots so the backing array does not keep them alive.
	var zero K
	for i := mid; i < len(n.keys); i++ {
		n.keys[i] = zero
	}
	n.keys = n.keys[:mid]
	if !n.isLeaf() {
		for i := mid + 1; i < len(n.children); i++ {
			n.children[i] = nil
		}
		n.children = n.children[:mid+1]
	}

	return promoted, right
}

/*
insert descends to the leaf where key belongs and places it there.
inserted is false when an equal key already exists; the tree is left untouched.
When this node overflows on the way back up, it splits and hands the promoted key and
its new right sibling to the caller, which must absorb them (split == true).
*/
func (n *node[K]) insert(key K, compare CompareFunc[K]) (promoted K, right *node[K], inserted, split bool) {
	pos, found := n.search(key, compare)
	if found {
		return promoted, nil, false, false
	}

	if n.isLeaf() {
		n.insertKeyAt(pos, key)
	} else {
		childKey, sibling, ok, childSplit := n.children[pos].insert(key, compare)
		if !ok {
			return promoted, nil, false, false
		}
		if childSplit {
			n.insertKeyAt(pos, childKey)
			n.insertChildAt(pos+1, sibling)
		}
	}

	if len(n.keys) > MaxKeys {
		promoted, right = n.split()
		return promoted, right, true, true
	}
	return promoted, nil, true, false
}

// clone returns a deep copy of the subtree rooted at n.
func (n *node[K]) clone() *node[K] {
	c := &node[K]{keys: append([]K(nil), n.keys...)}
	if !n.isLeaf() {
		c.children = make([]*node[K], len(n.children))
		for i, child := range n.children {
			c.children[i] = child.clone()
		}
	}
	return c
}

// walk visits keys in ascending order and stops early when fn returns false.
func (n *node[K]) walk(fn func(K) bool) bool {
	for i, key := range n.keys {
		if !n.isLeaf() && !n.children[i].walk(fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	if !n.isLeaf() {
		return n.children[len(n.keys)].walk(fn)
	}
	return true
}

func (n *node[K]) count() int {
	total := len(n.keys)
	for _, child := range n.children {
		total += child.count()
	}
	return total
}
