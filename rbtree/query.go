package rbtree

// Lookup returns the node holding key, or nil if the key is absent.
func (t *Tree) Lookup(key int64) *Node {
	n := t.root
	for n != nil {
		if key < n.key {
			n = n.left
		} else if key > n.key {
			n = n.right
		} else {
			return n
		}
	}
	return nil
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int64) bool {
	return t.Lookup(key) != nil
}

// Min returns the smallest stored key, or ErrEmptyTree.
func (t *Tree) Min() (int64, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}
	return minNode(t.root).key, nil
}

// Max returns the largest stored key, or ErrEmptyTree.
func (t *Tree) Max() (int64, error) {
	if t.root == nil {
		return 0, ErrEmptyTree
	}
	return maxNode(t.root).key, nil
}

// Successor returns the node with the smallest key strictly greater
// than key, or nil if no such key exists. key itself need not be
// present.
func (t *Tree) Successor(key int64) *Node {
	var succ *Node
	n := t.root
	for n != nil {
		if key < n.key {
			succ = n
			n = n.left
		} else {
			n = n.right
		}
	}
	return succ
}

// Predecessor returns the node with the largest key strictly smaller
// than key, or nil if no such key exists.
func (t *Tree) Predecessor(key int64) *Node {
	var pred *Node
	n := t.root
	for n != nil {
		if key > n.key {
			pred = n
			n = n.right
		} else {
			n = n.left
		}
	}
	return pred
}

// ForEachAscending visits every node in increasing key order until fn
// returns false.
func (t *Tree) ForEachAscending(fn func(*Node) bool) {
	if t.root == nil {
		return
	}
	for n := minNode(t.root); n != nil; n = next(n) {
		if !fn(n) {
			return
		}
	}
}

// ForEachDescending visits every node in decreasing key order until
// fn returns false.
func (t *Tree) ForEachDescending(fn func(*Node) bool) {
	if t.root == nil {
		return
	}
	for n := maxNode(t.root); n != nil; n = prev(n) {
		if !fn(n) {
			return
		}
	}
}

// Keys returns all stored keys in ascending order.
func (t *Tree) Keys() []int64 {
	keys := make([]int64, 0, t.size)
	t.ForEachAscending(func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

func minNode(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode(n *Node) *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

func next(n *Node) *Node {
	if n.right != nil {
		return minNode(n.right)
	}
	p := n.parent
	for p != nil && n == p.right {
		n = p
		p = p.parent
	}
	return p
}

func prev(n *Node) *Node {
	if n.left != nil {
		return maxNode(n.left)
	}
	p := n.parent
	for p != nil && n == p.left {
		n = p
		p = p.parent
	}
	return p
}
