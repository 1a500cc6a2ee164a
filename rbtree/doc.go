// Package rbtree implements an ordered index over unique int64 keys,
// backed by a red-black tree. It guarantees O(log n) insertion and
// lookup and is the building block for higher-level ordered-set and
// indexing layers.
//
// The tree is a single-owner, single-writer structure: operations run
// to completion with no intermediate state visible to callers, and
// concurrent access must be serialized externally.
//
// Deletion is intentionally unsupported; the only mutations are
// Insert and Clear.
package rbtree
