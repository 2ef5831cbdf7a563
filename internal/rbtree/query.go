package rbtree

// Contains checks if a key is present in the tree.
func (t *Tree) Contains(key int) bool {
	return t.findNode(key) != t.nilNode
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree) Min() (int, error) {
	if t.root == t.nilNode {
		return 0, ErrEmptyTree
	}
	return t.minimum(t.root).key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree) Max() (int, error) {
	if t.root == t.nilNode {
		return 0, ErrEmptyTree
	}
	return t.maximum(t.root).key, nil
}

func (t *Tree) findNode(key int) *node {
	current := t.root
	for current != t.nilNode {
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return current
		}
	}
	return t.nilNode
}

func (t *Tree) minimum(x *node) *node {
	for x.left != t.nilNode {
		x = x.left
	}
	return x
}

func (t *Tree) maximum(x *node) *node {
	for x.right != t.nilNode {
		x = x.right
	}
	return x
}
