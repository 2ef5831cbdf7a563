package rbtree

// VerifyTreeProperties validates Red-Black Tree invariants:
// 1. Keys are in binary search tree order
// 2. Root is always black
// 3. Red nodes must have black children
// 4. All paths from node to leaves have same black node count
// Returns true if all properties are satisfied
func (t *Tree) VerifyTreeProperties() bool {
	return t.Verify() == nil
}

// Verify walks the whole tree and returns an *InvariantError describing
// the first broken invariant, or nil. It also checks parent links and
// that the node count matches Size.
func (t *Tree) Verify() error {
	if t.nilNode.color != black {
		return &InvariantError{Property: PropertyBlackHeight, Detail: "sentinel is red"}
	}
	if t.root == t.nilNode {
		if t.size != 0 {
			return &InvariantError{Property: PropertySize, Detail: "empty tree with non-zero size"}
		}
		return nil
	}
	if t.root.color != black {
		return &InvariantError{Property: PropertyRootBlack, Key: t.root.key}
	}
	if t.root.parent != t.nilNode {
		return &InvariantError{Property: PropertyLinks, Key: t.root.key, Detail: "root has a parent"}
	}

	c := checker{t: t}
	if _, err := c.check(t.root, nil, nil); err != nil {
		return err
	}
	if c.count != t.size {
		return &InvariantError{Property: PropertySize, Key: t.root.key, Detail: "node count differs from Size()"}
	}
	return nil
}

type checker struct {
	t     *Tree
	count int
}

// check returns the black height of the subtree rooted at n, counting
// the sentinel leaves. lo and hi are exclusive key bounds when non-nil.
func (c *checker) check(n *node, lo, hi *int) (int, error) {
	if n == c.t.nilNode {
		return 1, nil
	}
	c.count++

	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, &InvariantError{Property: PropertyOrder, Key: n.key}
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, &InvariantError{Property: PropertyRed, Key: n.key}
	}
	for _, child := range []*node{n.left, n.right} {
		if child != c.t.nilNode && child.parent != n {
			return 0, &InvariantError{Property: PropertyLinks, Key: child.key, Detail: "child does not point back to its parent"}
		}
	}

	leftCount, err := c.check(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rightCount, err := c.check(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if leftCount != rightCount {
		return 0, &InvariantError{Property: PropertyBlackHeight, Key: n.key}
	}

	if n.color == black {
		leftCount++
	}
	return leftCount, nil
}

// BlackHeight returns the number of black nodes on any path from the
// root down to a leaf, sentinel included. An empty tree has height 1.
func (t *Tree) BlackHeight() int {
	h := 1
	for n := t.root; n != t.nilNode; n = n.left {
		if n.color == black {
			h++
		}
	}
	return h
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(n *node) int {
	if n == t.nilNode {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}
