package rbtree

import "sync"

type Color uint8

const (
	Red   Color = 0
	Black Color = 1
)

// String returns the single-letter render tag for the color. "D" is
// the tag for a color value no operation currently assigns.
func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Black:
		return "B"
	default:
		return "D"
	}
}

// Node is a single tree entry. A node is owned by exactly one tree
// edge (or the tree root); the parent pointer is a back-reference
// only and never an owning edge. Callers must treat nodes returned
// from queries as read-only.
type Node struct {
	key    int64
	color  Color
	left   *Node
	right  *Node
	parent *Node
}

func (n *Node) Key() int64   { return n.key }
func (n *Node) Color() Color { return n.color }

// Tree is an ordered set of unique int64 keys. The zero value is an
// empty tree ready for use.
type Tree struct {
	root *Node
	size int
}

// nodePool recycles nodes across Insert/Clear cycles.
var nodePool = sync.Pool{
	New: func() any { return new(Node) },
}

func newNode(key int64) *Node {
	n := nodePool.Get().(*Node)
	*n = Node{key: key, color: Red}
	return n
}

func freeNode(n *Node) {
	*n = Node{}
	nodePool.Put(n)
}

// New constructs an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewWithKey constructs a tree holding a single key. The root of a
// tree is always black.
func NewWithKey(key int64) *Tree {
	n := newNode(key)
	n.color = Black
	return &Tree{root: n, size: 1}
}

func (t *Tree) Size() int { return t.size }

// Insert adds key to the tree. It returns ErrDuplicateKey if the key
// is already present; the tree is left unchanged in that case.
func (t *Tree) Insert(key int64) error {
	var y *Node
	x := t.root
	for x != nil {
		y = x
		if key < x.key {
			x = x.left
		} else if key > x.key {
			x = x.right
		} else {
			return ErrDuplicateKey
		}
	}

	z := newNode(key)
	z.parent = y
	if y == nil {
		t.root = z
	} else if key < y.key {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.size++
	return nil
}

// insertFixup restores the red-black invariants after z was attached
// as a red leaf. Violations only ever move upward; each iteration
// either recolors and climbs two levels or terminates after at most
// two rotations.
func (t *Tree) insertFixup(z *Node) {
	for z.parent != nil && z.parent.color == Red {
		// A red parent is never the root, so the grandparent exists.
		g := z.parent.parent
		if z.parent == g.left {
			y := g.right // uncle; nil counts as black
			if y != nil && y.color == Red {
				z.parent.color = Black
				y.color = Black
				g.color = Red
				z = g
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := g.left
			if y != nil && y.color == Red {
				z.parent.color = Black
				y.color = Black
				g.color = Red
				z = g
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = Black
}

// leftRotate pivots x's right child into x's position. Rotations are
// purely structural; recoloring happens in insertFixup.
func (t *Tree) leftRotate(x *Node) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree) rightRotate(y *Node) {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
}
