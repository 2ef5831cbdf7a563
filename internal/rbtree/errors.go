package rbtree

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned by Min and Max when the tree holds no keys.
var ErrEmptyTree = errors.New("rbtree: empty tree")

// Property names one of the Red-Black Tree invariants.
type Property string

const (
	PropertyOrder       Property = "bst order"
	PropertyRootBlack   Property = "root is black"
	PropertyRed         Property = "red node has red child"
	PropertyBlackHeight Property = "black height"
	PropertyLinks       Property = "parent link"
	PropertySize        Property = "size"
)

// InvariantError reports a broken tree invariant found by Verify.
type InvariantError struct {
	Property Property
	Key      int
	Detail   string
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rbtree: %s violated at key %d", e.Property, e.Key)
	}
	return fmt.Sprintf("rbtree: %s violated at key %d: %s", e.Property, e.Key, e.Detail)
}
