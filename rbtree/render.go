package rbtree

import (
	"strconv"
	"strings"
)

// Traversal renderings produce one "{color}{key}" token per node,
// space-joined. They exist for structural inspection and tests, not
// as a stable persisted format.
//
// Whole-tree walks in this file use explicit stacks, never recursion.

func token(n *Node) string {
	return n.color.String() + strconv.FormatInt(n.key, 10)
}

// InorderString renders the tree in ascending key order.
func (t *Tree) InorderString() string {
	out := make([]string, 0, t.size)
	stack := make([]*Node, 0, 32)
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, token(n))
		n = n.right
	}
	return strings.Join(out, " ")
}

// PreorderString renders the tree root-first.
func (t *Tree) PreorderString() string {
	if t.root == nil {
		return ""
	}
	out := make([]string, 0, t.size)
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, token(n))
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return strings.Join(out, " ")
}

// PostorderString renders the tree children-first.
func (t *Tree) PostorderString() string {
	if t.root == nil {
		return ""
	}
	// Visit root-right-left, then reverse into left-right-root.
	out := make([]string, 0, t.size)
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, token(n))
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return strings.Join(out, " ")
}

// Clone returns a deep copy of the tree. Keys and colors are copied
// as-is and parent links are rebuilt on the copy; the two trees share
// no nodes, so mutating one never affects the other.
func (t *Tree) Clone() *Tree {
	c := &Tree{size: t.size}
	if t.root == nil {
		return c
	}
	c.root = cloneNode(t.root)

	type pair struct{ src, dst *Node }
	stack := []pair{{t.root, c.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.src.left != nil {
			l := cloneNode(p.src.left)
			l.parent = p.dst
			p.dst.left = l
			stack = append(stack, pair{p.src.left, l})
		}
		if p.src.right != nil {
			r := cloneNode(p.src.right)
			r.parent = p.dst
			p.dst.right = r
			stack = append(stack, pair{p.src.right, r})
		}
	}
	return c
}

func cloneNode(src *Node) *Node {
	n := newNode(src.key)
	n.color = src.color
	return n
}

// Clear removes every node and returns it to the pool. Children are
// released before their parent, so no released node is still
// referenced by a live one.
func (t *Tree) Clear() {
	n := t.root
	for n != nil {
		if n.left != nil {
			n = n.left
		} else if n.right != nil {
			n = n.right
		} else {
			p := n.parent
			if p != nil {
				if p.left == n {
					p.left = nil
				} else {
					p.right = nil
				}
			}
			freeNode(n)
			n = p
		}
	}
	t.root = nil
	t.size = 0
}
