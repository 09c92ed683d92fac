package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/stretchr/testify/require"
)

func TestSplayTree_Insert(t *testing.T) {
	tree := NewSplay[int]()
	content := make(map[int]struct{})
	for _, b := range randValues(tAddN) {
		_, in := content[b]
		if c := tree.Insert(b); !in && c == false {
			t.Errorf("failed to insert key %v", b)
		} else if in && c == true {
			t.Errorf("inserted key %v twice", b)
		}
		if tree.root.v != b {
			t.Fatalf("root is %v after inserting %v", tree.root.v, b)
		}
		content[b] = struct{}{}
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), len(content))
	s := inOrder(tree.root)
	checkSorted(t, s)
	if len(s) != len(content) {
		t.Errorf("sorted size is %d, want %d", len(s), len(content))
	}
}

func TestSplayTree_LookupSplays(t *testing.T) {
	tree := NewSplay[int]()
	content := make(map[int]struct{})
	for _, b := range randValues(tAddN / 4) {
		tree.Insert(b)
		content[b] = struct{}{}
	}
	for k := range content {
		if _, found := tree.Lookup(k); !found {
			t.Fatalf("tree does not have key %v", k)
		}
		if tree.root.v != k {
			t.Fatalf("root is %v after looking up %v", tree.root.v, k)
		}
		if d, found := tree.Lookup(k); !found || d != 0 {
			t.Fatalf("second lookup of %v gave depth %d, found %v", k, d, found)
		}
	}
	checkSorted(t, inOrder(tree.root))
	for range 1000 {
		k := rg.Intn(tAddValRange) + tAddValRange
		if _, found := tree.Lookup(k); found {
			t.Errorf("tree has non existent key %v", k)
		}
	}
	s := inOrder(tree.root)
	checkSorted(t, s)
	require.Len(t, s, len(content))
}

func TestSplayTree_ThreeInOrder(t *testing.T) {
	tree := NewSplay[int]()
	for _, v := range []int{1, 2, 3} {
		require.True(t, tree.Insert(v))
		require.Equal(t, v, tree.root.v)
	}
	require.False(t, tree.Insert(3))
	_, found := tree.Lookup(1)
	require.True(t, found)
	require.Equal(t, 1, tree.root.v)
	d, found := tree.Lookup(1)
	require.True(t, found)
	require.Zero(t, d)
	require.Equal(t, []int{1, 2, 3}, inOrder(tree.root))
}

func TestSplayTree_Depths(t *testing.T) {
	tree := NewSplay[int]()
	for _, v := range seq(7) {
		tree.Insert(v)
	}
	// sorted insertions leave a chain leaning left: 7, 6, ..., 1.
	require.Equal(t, 6, tree.Height())
	require.Nil(t, tree.root.r)

	// three zig-zig steps.
	d, found := tree.Lookup(1)
	require.True(t, found)
	require.EqualValues(t, 3, d)
	require.Equal(t, 1, tree.root.v)
	require.Nil(t, tree.root.l)
	require.Equal(t, 6, tree.root.r.v)
	require.Equal(t, 4, tree.root.r.l.v)
	require.Equal(t, 4, tree.Height())

	// two zig-zag steps.
	d, found = tree.Lookup(3)
	require.True(t, found)
	require.EqualValues(t, 2, d)
	require.Equal(t, 3, tree.root.v)
	require.Equal(t, 1, tree.root.l.v)
	require.Equal(t, 6, tree.root.r.v)
	require.Equal(t, seq(7), inOrder(tree.root))

	// a miss still brings the closest value up.
	_, found = tree.Lookup(0)
	require.False(t, found)
	require.Equal(t, 1, tree.root.v)
	_, found = tree.Lookup(8)
	require.False(t, found)
	require.Equal(t, 7, tree.root.v)
	require.Equal(t, seq(7), inOrder(tree.root))
}

func TestSplayTree_Empty(t *testing.T) {
	var tree SplayTree[int]
	_, found := tree.Lookup(1)
	require.False(t, found)
	require.Nil(t, tree.root)
	require.Equal(t, -1, tree.Height())
	require.True(t, tree.Insert(1))
	d, found := tree.Lookup(1)
	require.True(t, found)
	require.Zero(t, d)
}

// TestSplayTree_AgainstGods interleaves insertions and lookups and compares the
// results with the AVL tree of emirpasic/gods.
func TestSplayTree_AgainstGods(t *testing.T) {
	tree := NewSplay[int]()
	ref := avltree.NewWithIntComparator()
	for range tAddN {
		v := rg.Intn(tAddValRange / 8)
		_, had := ref.Get(v)
		if rg.Intn(2) == 0 {
			ref.Put(v, struct{}{})
			if got := tree.Insert(v); got == had {
				t.Fatalf("Insert(%d)=%v, want %v", v, got, !had)
			}
		} else if _, found := tree.Lookup(v); found != had {
			t.Fatalf("Lookup(%d) found=%v, want %v", v, found, had)
		}
	}
	s := inOrder(tree.root)
	checkSorted(t, s)
	require.Len(t, s, ref.Size())
}

func TestSplayTree_Clone(t *testing.T) {
	tree := NewSplay[int]()
	for _, v := range randValues(1000) {
		tree.Insert(v)
	}
	c := tree.Clone()
	orig := inOrder(tree.root)
	rootV := tree.root.v
	require.Equal(t, orig, inOrder(c.root))
	for _, v := range orig[:100] {
		_, found := c.Lookup(v)
		require.True(t, found)
	}
	require.Equal(t, rootV, tree.root.v, "splaying the clone changed the original")
	require.Equal(t, orig, inOrder(tree.root))
}
