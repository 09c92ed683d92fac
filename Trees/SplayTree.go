package Trees

import "cmp"

// the step taken at a node while descending during a splay. L steps go into
// the left child, R steps mirror them.
const (
	zigL    byte = iota // v is the left child.
	zigZigL             // v is in the left subtree of the left child.
	zigZagL             // v is in the right subtree of the left child.
	zigR
	zigZigR
	zigZagR
)

type splayFrame[T any] struct {
	n    *node[T]
	step byte
}

// SplayTree is a self adjusting binary search tree with no repeated values. It
// keeps no balance information: every Insert and every Lookup, successful or
// not, splays the tree so that the accessed value, or the last value met when
// searching for it, becomes the root. A single operation can take O(n) time
// but any sequence of m operations takes O((m+n)log n).
// Since Lookup restructures the tree, a SplayTree can't be shared between
// readers either.
// The zero value is an empty tree ready to use.
type SplayTree[T cmp.Ordered] struct {
	root *node[T]
	st   []splayFrame[T] // reused by splay.
}

// NewSplay returns an empty SplayTree.
func NewSplay[T cmp.Ordered]() *SplayTree[T] {
	return new(SplayTree[T])
}

// splay the tree towards v and returns the number of levels descended. Every level
// covers one or two edges: a zig-zig or zig-zag step counts once.
// The descent records one frame per level, then the frames are unwound bottom
// up, each one rotating the splayed subtree below it up by one level or two.
// This is the recursive top-down splay with the recursion turned into a
// loop over u.st.
// Time: amortized O(log n); Space: O(D)
func (u *SplayTree[T]) splay(v T) (depth uint) {
	st := u.st[:0]
	var sub *node[T] // the splayed subtree below the deepest frame.
	for cur := u.root; cur != nil; {
		if v < cur.v {
			lc := cur.l
			if lc == nil {
				sub = cur
				break
			}
			depth++
			if v < lc.v {
				st, cur = append(st, splayFrame[T]{cur, zigZigL}), lc.l
			} else if lc.v < v {
				st, cur = append(st, splayFrame[T]{cur, zigZagL}), lc.r
			} else {
				st = append(st, splayFrame[T]{cur, zigL})
				break
			}
		} else if cur.v < v {
			rc := cur.r
			if rc == nil {
				sub = cur
				break
			}
			depth++
			if rc.v < v {
				st, cur = append(st, splayFrame[T]{cur, zigZigR}), rc.r
			} else if v < rc.v {
				st, cur = append(st, splayFrame[T]{cur, zigZagR}), rc.l
			} else {
				st = append(st, splayFrame[T]{cur, zigR})
				break
			}
		} else {
			sub = cur
			break
		}
	}
	for i := len(st) - 1; i >= 0; i-- {
		t := st[i].n
		switch st[i].step {
		case zigZigL:
			t.l.l = sub
			rotateRight(&t)
			rotateRight(&t)
		case zigZagL:
			if t.l.r = sub; sub != nil {
				rotateLeft(&t.l)
			}
			rotateRight(&t)
		case zigL:
			rotateRight(&t)
		case zigZigR:
			t.r.r = sub
			rotateLeft(&t)
			rotateLeft(&t)
		case zigZagR:
			if t.r.l = sub; sub != nil {
				rotateRight(&t.r)
			}
			rotateLeft(&t)
		case zigR:
			rotateLeft(&t)
		}
		sub = t
	}
	if len(st) > 0 {
		u.root = sub
	}
	clear(st)
	u.st = st[:0]
	return
}

// Insert [DepthTree.Insert]
// The tree is splayed towards v first. If v isn't the new root, v becomes the
// root and the old root its child: when v is less than the old root, the old root
// becomes the right child of v and gives its left subtree to v; and vice versa.
// Time: amortized O(log n)
func (u *SplayTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &node[T]{v: v}
		return true
	}
	u.splay(v)
	r := u.root
	if r.v == v {
		return false
	}
	n := &node[T]{v: v}
	if v < r.v {
		n.l, n.r = r.l, r
		r.l = nil
	} else {
		n.l, n.r = r, r.r
		r.r = nil
	}
	u.root = n
	return true
}

// Lookup [DepthTree.Lookup]
// The tree is always splayed towards v, even if v isn't in the tree. depth is
// the number of levels descended by the splay, see splay. A found value is the
// root afterward, so looking it up again right away gives depth 0.
// Time: amortized O(log n)
func (u *SplayTree[T]) Lookup(v T) (uint, bool) {
	depth := u.splay(v)
	if u.root == nil || u.root.v != v {
		return 0, false
	}
	return depth, true
}

// Height of the tree, -1 when empty.
// Time: O(n); Space: O(n)
func (u *SplayTree[T]) Height() int {
	return nodeHeight(u.root)
}

// Clone returns a deep copy of u, sharing no node with it.
// Time: O(n); Space: O(n)
func (u *SplayTree[T]) Clone() *SplayTree[T] {
	root, _ := cloneNodes(u.root)
	return &SplayTree[T]{root: root}
}

// Clear [DepthTree.Clear]
func (u *SplayTree[T]) Clear() {
	u.root = nil
	u.st = nil
}
