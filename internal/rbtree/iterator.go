package rbtree

import (
	"iter"
	"strconv"
	"strings"
)

// All returns an iterator over the keys in ascending order.
// The tree must not be modified while the iteration is running.
func (t *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		stack := []*node{}
		current := t.root
		for current != t.nilNode || len(stack) > 0 {

			for current != t.nilNode {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key) {
				return
			}

			current = current.right
		}
	}
}

// Backward returns an iterator over the keys in descending order.
func (t *Tree) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		stack := []*node{}
		current := t.root
		for current != t.nilNode || len(stack) > 0 {
			for current != t.nilNode {
				stack = append(stack, current)
				current = current.right
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key) {
				return
			}

			current = current.left
		}
	}
}

// InOrder returns the keys in ascending order. Each call allocates a
// new slice of length Size().
func (t *Tree) InOrder() []int {
	keys := make([]int, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// String renders the keys in ascending order, e.g. "[1 2 3]".
func (t *Tree) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for k := range t.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(strconv.Itoa(k))
	}
	b.WriteByte(']')
	return b.String()
}
