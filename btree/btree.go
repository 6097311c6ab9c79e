package btree

import "cmp"

const (
	MaxKeys     = 3           // keys a node may hold once an insertion has settled
	maxChildren = MaxKeys + 1 // 4, an order-4 tree
)

/*
CompareFunc orders two keys: negative if a < b, zero if equal, positive if a > b.
It must be pure, the tree binary searches every node with it.
*/
type CompareFunc[K any] func(a, b K) int

// Ordered returns the natural comparator for built-in ordered types.
func Ordered[K cmp.Ordered]() CompareFunc[K] {
	return cmp.Compare[K]
}
