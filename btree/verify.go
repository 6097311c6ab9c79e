package btree

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyKeys   = errors.New("node holds more than MaxKeys keys")
	ErrChildCount    = errors.New("internal node child count is not keys+1")
	ErrKeyOrder      = errors.New("keys out of order")
	ErrUnevenLeaves  = errors.New("leaves at different depths")
	ErrSizeMismatch  = errors.New("stored key count does not match size")
	ErrEmptyInternal = errors.New("internal node without keys")
)

/*
Verify walks the whole tree and checks its structural invariants:
every node holds at most MaxKeys keys, internal nodes have exactly one child more
than keys, an in-order walk is strictly ascending and every leaf sits at the same depth.
It is meant for tests and debugging.
*/
func (t *Btree[K]) Verify() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	leafDepth := -1
	if err := t.verifyNode(t.root, 0, &leafDepth); err != nil {
		return err
	}

	var (
		prev  K
		count int
		err   error
	)
	t.root.walk(func(k K) bool {
		if count > 0 && t.compare(prev, k) >= 0 {
			err = fmt.Errorf("%w: %v is not before %v", ErrKeyOrder, prev, k)
			return false
		}
		prev = k
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: walked %d, size %d", ErrSizeMismatch, count, t.size)
	}
	return nil
}

func (t *Btree[K]) verifyNode(n *node[K], depth int, leafDepth *int) error {
	if len(n.keys) > MaxKeys {
		return fmt.Errorf("%w: %v at depth %d", ErrTooManyKeys, n.keys, depth)
	}
	if n.isLeaf() {
		if *leafDepth < 0 {
			*leafDepth = depth
		} else if *leafDepth != depth {
			return fmt.Errorf("%w: %d and %d", ErrUnevenLeaves, *leafDepth, depth)
		}
		return nil
	}
	if len(n.keys) == 0 {
		return fmt.Errorf("%w: depth %d", ErrEmptyInternal, depth)
	}
	if len(n.children) != len(n.keys)+1 {
		return fmt.Errorf("%w: %d keys, %d children", ErrChildCount, len(n.keys), len(n.children))
	}
	for _, child := range n.children {
		if err := t.verifyNode(child, depth+1, leafDepth); err != nil {
			return err
		}
	}
	return nil
}
