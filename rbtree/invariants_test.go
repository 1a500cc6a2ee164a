package rbtree

import (
	"math/rand"
	"testing"
)

// checkInvariants validates the full red-black contract: black root,
// no red-red edge, uniform black-height, BST order, consistent parent
// links, and size matching the live node count.
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	if tree.root == nil {
		if tree.Size() != 0 {
			t.Fatalf("empty tree has size %d", tree.Size())
		}
		return
	}
	if tree.root.color != Black {
		t.Fatal("root is not black")
	}
	if tree.root.parent != nil {
		t.Fatal("root has a parent")
	}

	count := 0
	checkSubtree(t, tree.root, &count)

	if count != tree.Size() {
		t.Fatalf("size=%d but %d nodes reachable", tree.Size(), count)
	}

	keys := tree.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("BST order violated: %d >= %d", keys[i-1], keys[i])
		}
	}
}

// checkSubtree returns the black-height of n and accumulates the node
// count, failing the test on any structural violation.
func checkSubtree(t *testing.T, n *Node, count *int) int {
	t.Helper()
	if n == nil {
		return 0
	}
	*count++

	if n.left != nil && n.left.parent != n {
		t.Fatalf("left child of %d has wrong parent link", n.key)
	}
	if n.right != nil && n.right.parent != n {
		t.Fatalf("right child of %d has wrong parent link", n.key)
	}
	if n.color == Red {
		if n.left != nil && n.left.color == Red {
			t.Fatalf("red-red edge at %d -> %d", n.key, n.left.key)
		}
		if n.right != nil && n.right.color == Red {
			t.Fatalf("red-red edge at %d -> %d", n.key, n.right.key)
		}
	}

	lh := checkSubtree(t, n.left, count)
	rh := checkSubtree(t, n.right, count)
	if lh != rh {
		t.Fatalf("black-height mismatch under %d: left=%d right=%d",
			n.key, lh, rh)
	}
	if n.color == Black {
		return lh + 1
	}
	return lh
}

func TestInvariantsAscendingInserts(t *testing.T) {
	tree := New()
	for k := int64(0); k < 512; k++ {
		if err := tree.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
		checkInvariants(t, tree)
	}
}

func TestInvariantsDescendingInserts(t *testing.T) {
	tree := New()
	for k := int64(512); k > 0; k-- {
		if err := tree.Insert(k); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
		checkInvariants(t, tree)
	}
}

func TestInvariantsRandomInserts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := rng.Perm(2048)

	tree := New()
	for i, k := range keys {
		if err := tree.Insert(int64(k)); err != nil {
			t.Fatalf("Insert(%d) failed: %v", k, err)
		}
		if i%64 == 0 {
			checkInvariants(t, tree)
		}
	}
	checkInvariants(t, tree)
}

func TestInvariantsSurviveClone(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := New()
	for _, k := range rng.Perm(300) {
		tree.Insert(int64(k))
	}

	cp := tree.Clone()
	checkInvariants(t, cp)

	for k := int64(1000); k < 1100; k++ {
		if err := cp.Insert(k); err != nil {
			t.Fatalf("Insert(%d) into clone failed: %v", k, err)
		}
	}
	checkInvariants(t, cp)
	checkInvariants(t, tree)
}

func TestBalancedHeight(t *testing.T) {
	tree := New()
	for k := int64(0); k < 4096; k++ {
		tree.Insert(k)
	}
	// A red-black tree with n nodes has height <= 2*log2(n+1); for
	// n=4096 that is 26.
	h := height(tree.root)
	if h > 26 {
		t.Errorf("height=%d exceeds red-black bound 26 for 4096 keys", h)
	}
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	lh := height(n.left)
	rh := height(n.right)
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
