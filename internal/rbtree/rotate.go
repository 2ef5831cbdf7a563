package rbtree

func (t *Tree) rotateLeft(x *node) {
	/*
		Left rotation around node x:
			    Before:               After:
		          P                    P
		          |                    |
		          x                    y
		         / \                  / \
		        A   y       →        x   C
		           / \              / \
		          B   C            A   B
	*/
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	t.replaceChild(x.parent, x, y)
	y.left = x
	x.parent = y
}

func (t *Tree) rotateRight(y *node) {
	/*
		Right rotation around node y:
		    Before:               After:
		       P                    P
		       |                    |
		       y                    x
		      / \                  / \
		     x   C       →        A   y
		    / \                      / \
		   A   B                    B   C
	*/
	x := y.left
	y.left = x.right
	if x.right != t.nilNode {
		x.right.parent = y
	}
	t.replaceChild(y.parent, y, x)
	x.right = y
	y.parent = x
}

// replaceChild puts v into the slot parent currently gives to u, or makes
// v the root when u had no parent. v.parent is updated even when v is the
// sentinel; the delete fixup starts from it.
func (t *Tree) replaceChild(parent, u, v *node) {
	switch {
	case parent == t.nilNode:
		t.root = v
	case u == parent.left:
		parent.left = v
	default:
		parent.right = v
	}
	v.parent = parent
}
