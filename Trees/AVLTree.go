package Trees

import "cmp"

// AVLTree is a height balanced binary search tree with no repeated values.
// Every node caches the height of its subtree, and after every insertion
// |height(l)-height(r)|<=1 holds at every node again. So the height D of the tree
// is less than 1.44*log2(n+2).
// Values can't be removed from an AVLTree.
// The zero value is an empty tree ready to use.
type AVLTree[T cmp.Ordered] struct {
	root *avlNode[T]
}

// NewAVL returns an empty AVLTree.
func NewAVL[T cmp.Ordered]() *AVLTree[T] {
	return new(AVLTree[T])
}

// rebalance the subtree rooting at *curPtr once its children are balanced and
// its height is fixed. At most one single or double rotation is done.
// curPtr is passed by reference.
// Time: O(1)
func rebalance[T any](curPtr **avlNode[T]) {
	switch cur := *curPtr; cur.balance() {
	case 2:
		if cur.l.balance() < 0 {
			avlRotateLeft(&cur.l)
		}
		avlRotateRight(curPtr)
	case -2:
		if cur.r.balance() > 0 {
			avlRotateRight(&cur.r)
		}
		avlRotateLeft(curPtr)
	}
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false and
// no height changes.
func (u *AVLTree[T]) insert(curPtr **avlNode[T], v T) bool {
	cur := *curPtr
	if cur == nil {
		*curPtr = &avlNode[T]{v: v}
		return true
	}
	inserted := false
	if v < cur.v {
		inserted = u.insert(&cur.l, v)
	} else if cur.v < v {
		inserted = u.insert(&cur.r, v)
	}
	if inserted {
		cur.fix()
		rebalance(curPtr)
	}
	return inserted
}

// Insert [DepthTree.Insert]. Recursive, the depth of the recursion is bounded by
// the height of the tree.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	return u.insert(&u.root, v)
}

// Lookup [DepthTree.Lookup]
// depth is the number of edges from the root to v, the root being at depth 0.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Lookup(v T) (depth uint, found bool) {
	for cur := u.root; cur != nil; depth++ {
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return depth, true
		}
	}
	return 0, false
}

// Height of the tree, -1 when empty.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() int {
	return u.root.height()
}

// Clone returns a deep copy of u, sharing no node with it.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) Clone() *AVLTree[T] {
	return &AVLTree[T]{cloneAVLNodes(u.root)}
}

// Clear [DepthTree.Clear]
func (u *AVLTree[T]) Clear() {
	u.root = nil
}
