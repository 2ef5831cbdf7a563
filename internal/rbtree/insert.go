package rbtree

// Insert adds key to the tree while maintaining Red-Black Tree
// properties. Inserting a key that is already present is a no-op;
// the result reports whether the key was added.
func (t *Tree) Insert(key int) bool {
	parent := t.nilNode
	current := t.root

	for current != t.nilNode {
		parent = current
		switch {
		case key < current.key:
			current = current.left
		case key > current.key:
			current = current.right
		default:
			return false
		}
	}

	z := t.newNode(key)
	z.parent = parent
	switch {
	case parent == t.nilNode:
		z.color = black
		t.root = z
	case key < parent.key:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++

	if parent.color == red {
		t.fixInsert(z)
	}
	t.root.color = black
	return true
}

// fixInsert resolves a red node with a red parent. The grandparent
// always exists here: a red parent is never the root.
func (t *Tree) fixInsert(x *node) {
	for x.parent.color == red {
		p := x.parent
		g := p.parent
		if p == g.left {
			uncle := g.right
			if uncle.color == red {
				// Red uncle: push the blackness down from g and retry there.
				p.color = black
				uncle.color = black
				g.color = red
				x = g
				continue
			}
			if x == p.right {
				// Zig-zag: straighten into a left-left chain.
				x = p
				t.rotateLeft(x)
				p = x.parent
			}
			p.color = black
			g.color = red
			t.rotateRight(g)
		} else {
			uncle := g.left
			if uncle.color == red {
				p.color = black
				uncle.color = black
				g.color = red
				x = g
				continue
			}
			if x == p.left {
				x = p
				t.rotateRight(x)
				p = x.parent
			}
			p.color = black
			g.color = red
			t.rotateLeft(g)
		}
	}
}
