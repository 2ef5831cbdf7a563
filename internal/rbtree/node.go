package rbtree

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// node holds one key. Missing children point at the tree's sentinel,
// which is always black and never holds a key.
type node struct {
	key                 int
	color               color
	left, right, parent *node
}

func (t *Tree) newNode(key int) *node {
	return &node{
		key:    key,
		color:  red,
		left:   t.nilNode,
		right:  t.nilNode,
		parent: t.nilNode,
	}
}
