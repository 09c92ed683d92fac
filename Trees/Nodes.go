package Trees

// A node in the BSTree and the SplayTree.
// A node exclusively owns its children, there are no parent pointers.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// rotateRight promotes the left child of *n, also known as rotateWithLeftChild.
// n is passed by reference in order to modify its content. Does nothing if
// *n has no left child.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.l
	if lc == nil {
		return
	}
	r.l = lc.r
	lc.r = r
	*n = lc
}

// rotateLeft promotes the right child of *n, also known as rotateWithRightChild.
// n is passed by reference in order to modify its content. Does nothing if
// *n has no right child.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.r
	if rc == nil {
		return
	}
	r.r = rc.l
	rc.l = r
	*n = rc
}

// cloneNodes copies the subtree rooting at n iteratively, returning the new
// root and the number of nodes copied.
// Time: O(n); Space: O(h)
func cloneNodes[T any](n *node[T]) (*node[T], uint) {
	if n == nil {
		return nil, 0
	}
	root := &node[T]{v: n.v}
	count := uint(1)
	st := [][2]*node[T]{{n, root}} //[src, dst]
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if src := top[0].l; src != nil {
			top[1].l = &node[T]{v: src.v}
			st = append(st, [2]*node[T]{src, top[1].l})
			count++
		}
		if src := top[0].r; src != nil {
			top[1].r = &node[T]{v: src.v}
			st = append(st, [2]*node[T]{src, top[1].r})
			count++
		}
	}
	return root, count
}

// nodeHeight counts the edges on the longest root to leaf path level by level.
// The height of an empty subtree is -1.
// Time: O(n); Space: O(w), w being the width of the widest level.
func nodeHeight[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	h := -1
	for level := []*node[T]{n}; len(level) > 0; h++ {
		var next []*node[T]
		for _, c := range level {
			if c.l != nil {
				next = append(next, c.l)
			}
			if c.r != nil {
				next = append(next, c.r)
			}
		}
		level = next
	}
	return h
}

// A node in the AVLTree. h is the cached height of the subtree rooting at
// this node. A leaf has height 0, which makes the zero value of h meaningful.
type avlNode[T any] struct {
	v    T
	l, r *avlNode[T]
	h    int
}

// height of the subtree rooting at n, -1 if n is nil.
func (n *avlNode[T]) height() int {
	if n == nil {
		return -1
	}
	return n.h
}

// fix the cached height of n from its children.
func (n *avlNode[T]) fix() {
	n.h = max(n.l.height(), n.r.height()) + 1
}

// balance factor of n, height(l)-height(r).
func (n *avlNode[T]) balance() int {
	return n.l.height() - n.r.height()
}

// avlRotateRight is rotateRight that also recomputes the heights of the two
// nodes involved, bottom node first.
// Time: O(1); Space: O(1)
func avlRotateRight[T any](n **avlNode[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.fix()
	lc.fix()
	*n = lc
}

// avlRotateLeft is rotateLeft that also recomputes the heights of the two
// nodes involved, bottom node first.
// Time: O(1); Space: O(1)
func avlRotateLeft[T any](n **avlNode[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.fix()
	rc.fix()
	*n = rc
}

func cloneAVLNodes[T any](n *avlNode[T]) *avlNode[T] {
	if n == nil {
		return nil
	}
	root := &avlNode[T]{v: n.v, h: n.h}
	st := [][2]*avlNode[T]{{n, root}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if src := top[0].l; src != nil {
			top[1].l = &avlNode[T]{v: src.v, h: src.h}
			st = append(st, [2]*avlNode[T]{src, top[1].l})
		}
		if src := top[0].r; src != nil {
			top[1].r = &avlNode[T]{v: src.v, h: src.h}
			st = append(st, [2]*avlNode[T]{src, top[1].r})
		}
	}
	return root
}
