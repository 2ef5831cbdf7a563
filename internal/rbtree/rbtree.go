// Package rbtree implements an ordered set of integer keys backed by a
// Red-Black Tree, with insertion, deletion and search operations.
//
// Red-Black Tree is a self-balancing binary search tree that guarantees
// O(log n) time complexity for basic operations.
//
// A Tree is not safe for concurrent use. Mutations must be serialized by
// the caller; reads may run concurrently only while no mutation is in
// flight.
package rbtree

// Tree represents a Red-Black Tree instance.
// Use New() to create a new tree instance.
type Tree struct {
	root    *node
	nilNode *node // Sentinel node
	size    int
}

// New creates and returns a new empty Red-Black Tree.
func New() *Tree {
	nilNode := &node{color: black}
	nilNode.left, nilNode.right, nilNode.parent = nilNode, nilNode, nilNode
	return &Tree{
		root:    nilNode,
		nilNode: nilNode,
	}
}

// Size returns the number of keys in the tree.
func (t *Tree) Size() int { return t.size }

// Len is an alias of Size.
func (t *Tree) Len() int { return t.size }

// Clear removes every key from the tree.
func (t *Tree) Clear() {
	t.root = t.nilNode
	t.size = 0
}
