package Trees

import (
	"cmp"
	"fmt"
)

// DepthTree represents an ordered set that reports how deep an element sits.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, Lookup on an element that
// isn't in the tree returns (0, false) and the depth must not be used.
// Values are compared with < and ==, so T must be totally ordered: a NaN
// float, for example, silently breaks the search-tree property. It is up to
// the caller to never insert such values.
// None of the implementations are safe for concurrent use.
type DepthTree[T cmp.Ordered] interface {
	//Insert v to the tree. Returning true if v was added, false if v was
	//already present, in which case the tree is left untouched.
	Insert(v T) bool
	//Lookup v in the tree. depth is the number of comparisons made before
	//reaching v, it is only meaningful when found==true.
	//Exact meaning of depth depend on implementation.
	Lookup(v T) (depth uint, found bool)
	//Clear all the elements from the tree. Calling Clear on an empty tree
	//does nothing.
	Clear()
}

var (
	_ DepthTree[int] = (*BSTree[int, uint])(nil)
	_ DepthTree[int] = (*AVLTree[int])(nil)
	_ DepthTree[int] = (*SplayTree[int])(nil)
)

// InvalidSliceError is the panic value of builders given a slice that isn't
// strictly increasing. At is the index of the first offending element.
type InvalidSliceError struct {
	At        int
	Prev, Cur any
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: slice isn't strictly increasing at index %d: %v is not less than %v", e.At, e.Prev, e.Cur)
}
