package rbtree

// Delete removes key from the tree while maintaining Red-Black Tree
// properties. If key doesn't exist, the operation is a no-op; the
// result reports whether a key was removed.
func (t *Tree) Delete(key int) bool {
	z := t.findNode(key)
	if z == t.nilNode {
		return false
	}

	if z.left != t.nilNode && z.right != t.nilNode {
		// Two children: the successor is the leftmost node of the right
		// subtree and has no left child. Its key moves into z, z keeps
		// its color, and the successor is what gets unlinked.
		s := t.minimum(z.right)
		z.key = s.key
		z = s
	}

	t.removeNode(z)
	t.size--
	return true
}

// removeNode unlinks z, which has at most one non-sentinel child.
func (t *Tree) removeNode(z *node) {
	child := z.left
	if child == t.nilNode {
		child = z.right
	}

	t.transplant(z, child)

	// Removing a red node never changes a black-height. Removing a black
	// one leaves child a black short; a red child absorbs that by taking
	// z's color, which fixDelete does on its first check.
	if z.color == black {
		t.fixDelete(child)
	}

	t.nilNode.parent = t.nilNode
	z.left, z.right, z.parent = nil, nil, nil
}

func (t *Tree) transplant(u, v *node) {
	t.replaceChild(u.parent, u, v)
}

// fixDelete restores the black-height property starting at x, the node
// (or sentinel) that took the place of a removed black node.
func (t *Tree) fixDelete(x *node) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				// Red sibling: rotate it above the parent so x gets a
				// black sibling.
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
				continue
			}
			if w.right.color == black {
				// Near nephew red, far nephew black.
				w.left.color = black
				w.color = red
				t.rotateRight(w)
				w = x.parent.right
			}
			w.color = x.parent.color
			x.parent.color = black
			w.right.color = black
			t.rotateLeft(x.parent)
			x = t.root
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
				continue
			}
			if w.left.color == black {
				w.right.color = black
				w.color = red
				t.rotateLeft(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = black
			w.left.color = black
			t.rotateRight(x.parent)
			x = t.root
		}
	}
	x.color = black
}
