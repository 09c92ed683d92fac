package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values and no balancing
// at all. Inserting values in sorted order degenerates it into a chain, so
// the height D of the tree is O(n) in the worst case and about 2*ln(n) for
// random insertion orders.
// T is the type of values it will hold, S is the type of the variable used
// for counting the nodes. S should be a wide upperbound for the size of the
// tree.
// All the methods are implemented iteratively, so a chain of any length
// won't grow the goroutine stack.
// The zero value is an empty tree ready to use.
type BSTree[T cmp.Ordered, S constraints.Unsigned] struct {
	root *node[T]
	sz   S
}

// NewBST returns an empty BSTree.
func NewBST[T cmp.Ordered, S constraints.Unsigned]() *BSTree[T, S] {
	return new(BSTree[T, S])
}

// span of the slice [lo,hi) whose middle element goes to *slot.
type span[T any] struct {
	lo, hi int
	slot   **node[T]
}

// BuildBST builds a perfectly balanced BSTree from the given sorted slice. This is
// faster than repeatedly calling Insert. The word "set" is used to show that
// there shouldn't be any repeated element.
// The given slice must be sorted in ascending order and mustn't contain duplicate
// elements. If safe==true, this function will check it and panic with InvalidSliceError
// if the conditions are broken. Otherwise, it is up to the user to ensure the
// conditions are met (otherwise the tree will be corrupt).
// Time: O(n).
func BuildBST[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *BSTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !(sli[i-1] < sli[i]) {
				panic(InvalidSliceError{i, sli[i-1], sli[i]})
			}
		}
	}
	u := &BSTree[T, S]{sz: S(len(sli))}
	for st := []span[T]{{0, len(sli), &u.root}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.lo < top.hi {
			mid := int(uint(top.lo+top.hi) >> 1)
			n := &node[T]{v: sli[mid]}
			*top.slot = n
			st = append(st, span[T]{top.lo, mid, &n.l}, span[T]{mid + 1, top.hi, &n.r})
		}
	}
	return u
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Size() S {
	return u.sz
}

// IsEmpty returns whether the tree holds no value.
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) IsEmpty() bool {
	return u.root == nil
}

// Insert [DepthTree.Insert]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if cur.v < v {
			curPtr = &cur.r
		} else {
			return false
		}
	}
	*curPtr = &node[T]{v: v}
	u.sz++
	return true
}

// Has v in the tree. Same as the second return value of Lookup.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Has(v T) bool {
	_, found := u.Lookup(v)
	return found
}

// Lookup [DepthTree.Lookup]
// depth is the number of edges from the root to v, the root being at depth 0.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Lookup(v T) (depth uint, found bool) {
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

// Remove v from the tree. Returning true if v was in the tree, false otherwise.
// A node with two children isn't unlinked directly: it takes the value of its
// in-order predecessor (the maximum of its left subtree), and the predecessor's
// node, which has no right child, is unlinked instead.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Remove(v T) bool {
	curPtr := &u.root
	for {
		cur := *curPtr
		if cur == nil {
			return false
		}
		if v < cur.v {
			curPtr = &cur.l
		} else if cur.v < v {
			curPtr = &cur.r
		} else {
			break
		}
	}
	if cur := *curPtr; cur.l != nil && cur.r != nil {
		curPtr = &cur.l
		for (*curPtr).r != nil {
			curPtr = &(*curPtr).r
		}
		cur.v = (*curPtr).v
	}
	if cur := *curPtr; cur.l != nil {
		*curPtr = cur.l
	} else {
		*curPtr = cur.r
	}
	u.sz--
	return true
}

// Clone returns a deep copy of u, sharing no node with it. The size of
// the copy is counted while copying.
// Time: O(n); Space: O(n)
func (u *BSTree[T, S]) Clone() *BSTree[T, S] {
	root, count := cloneNodes(u.root)
	return &BSTree[T, S]{root, S(count)}
}

// Clear [DepthTree.Clear]
// Time: O(1); Space: O(1)
func (u *BSTree[T, S]) Clear() {
	u.root, u.sz = nil, 0
}

// Height of the tree, -1 when empty.
// Time: O(n); Space: O(n)
func (u *BSTree[T, S]) Height() int {
	return nodeHeight(u.root)
}
