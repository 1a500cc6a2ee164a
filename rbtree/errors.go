package rbtree

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already
	// present. The tree is never modified on a duplicate insert.
	ErrDuplicateKey = errors.New("rbtree: duplicate key")

	// ErrEmptyTree is returned by Min and Max when the tree holds no
	// keys.
	ErrEmptyTree = errors.New("rbtree: empty tree")
)
